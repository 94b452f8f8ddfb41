package logger

import "testing"

func TestLoggerSafeBeforeInitialize(t *testing.T) {
	// The package-level no-op logger must absorb calls made before
	// Initialize() without panicking.
	Infow("early message", "key", "value")
	Warnw("early warning")
	Errorw("early error", "err", "boom")
}

func TestInitialize(t *testing.T) {
	if err := Initialize(false); err != nil {
		t.Fatalf("Initialize(console) failed: %v", err)
	}
	if JSONOutput {
		t.Error("JSONOutput should be false after console init")
	}

	if err := Initialize(true); err != nil {
		t.Fatalf("Initialize(json) failed: %v", err)
	}
	if !JSONOutput {
		t.Error("JSONOutput should be true after JSON init")
	}

	if Logger == nil {
		t.Fatal("Logger is nil after Initialize")
	}
	Cleanup()
}
