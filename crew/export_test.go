package crew

// resetIDs rewinds the identity counter so that tests can spawn their own
// small crews without exhausting the bounded identity space.
func resetIDs() { idSeq.Store(0) }
