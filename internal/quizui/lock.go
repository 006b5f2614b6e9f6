package quizui

import "log"

// ScreenLock keeps the account focused on the quiz while it runs. Locking is
// best effort: a platform without a usable lock still gets a working quiz.
type ScreenLock interface {
	Lock() error
	Unlock() error
}

// NoopLock is the portable fallback when no platform lock is available.
type NoopLock struct{}

func (NoopLock) Lock() error   { return nil }
func (NoopLock) Unlock() error { return nil }

// lockBestEffort engages the lock and logs instead of failing the quiz
func lockBestEffort(lock ScreenLock) {
	if err := lock.Lock(); err != nil {
		log.Printf("Screen lock unavailable: %v", err)
	}
}

// unlockBestEffort releases the lock; failure only gets logged
func unlockBestEffort(lock ScreenLock) {
	if err := lock.Unlock(); err != nil {
		log.Printf("Screen unlock failed: %v", err)
	}
}
