package logger

import (
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, cfg Config) *Logger {
	t.Helper()
	log, err := New(cfg)
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestSanitizeValue_RedactsHealthDataKeys(t *testing.T) {
	log := newTestLogger(t, Config{Mode: "development", RedactionEnabled: true})
	for _, key := range []string{"notes", "allergies", "dietary_restrictions", "health_goals", "jwt_secret", "db_password"} {
		if got := log.sanitizeValue(key, "sensitive"); got != "[REDACTED]" {
			t.Fatalf("key %q should be redacted, got %v", key, got)
		}
	}
}

func TestSanitizeValue_HashesUserIDs(t *testing.T) {
	log := newTestLogger(t, Config{Mode: "development", RedactionEnabled: true, HashSalt: "pepper"})

	got := log.sanitizeValue("user_id", "user-1")
	s, ok := got.(string)
	if !ok || !strings.HasPrefix(s, "hash:") {
		t.Fatalf("user id should be hashed, got %v", got)
	}
	if strings.Contains(s, "user-1") {
		t.Fatalf("hashed value must not contain the raw id: %v", s)
	}

	// Same input, same hash: lines stay correlatable.
	if again := log.sanitizeValue("user_id", "user-1"); again != got {
		t.Fatalf("hash must be stable: %v != %v", again, got)
	}
	if other := log.sanitizeValue("user_id", "user-2"); other == got {
		t.Fatalf("distinct ids must hash differently")
	}

	// The salt is instance state: a logger built with another salt hashes
	// the same id differently.
	salted := newTestLogger(t, Config{Mode: "development", RedactionEnabled: true, HashSalt: "other"})
	if salted.sanitizeValue("user_id", "user-1") == got {
		t.Fatalf("different salts must produce different hashes")
	}
}

func TestSanitizeValue_PassesBenignKeysThrough(t *testing.T) {
	log := newTestLogger(t, Config{Mode: "development", RedactionEnabled: true})
	if got := log.sanitizeValue("meal_type", "lunch"); got != "lunch" {
		t.Fatalf("benign value should pass through, got %v", got)
	}
	if got := log.sanitizeValue("count", 12); got != 12 {
		t.Fatalf("non-string value should pass through, got %v", got)
	}
}

func TestSanitizeKVs_RedactionIsPerInstanceNotGlobal(t *testing.T) {
	on := newTestLogger(t, Config{Mode: "development", RedactionEnabled: true})
	off := newTestLogger(t, Config{Mode: "development", RedactionEnabled: false})

	kv := []interface{}{"notes", "too salty"}
	sanitized := on.sanitizeKVs(kv)
	if sanitized[1] != "[REDACTED]" {
		t.Fatalf("enabled logger must redact, got %v", sanitized[1])
	}
	passed := off.sanitizeKVs(kv)
	if passed[1] != "too salty" {
		t.Fatalf("disabled logger must pass values through, got %v", passed[1])
	}
	// The disabled instance must not have flipped the enabled one.
	if again := on.sanitizeKVs(kv); again[1] != "[REDACTED]" {
		t.Fatalf("redaction setting leaked between instances")
	}
}

func TestWith_PropagatesSanitizationSettings(t *testing.T) {
	log := newTestLogger(t, Config{Mode: "development", RedactionEnabled: true, HashSalt: "pepper"})
	child := log.With("service", "ProfileService")
	if got := child.sanitizeValue("notes", "sensitive"); got != "[REDACTED]" {
		t.Fatalf("child logger must keep redaction, got %v", got)
	}
	if child.sanitizeValue("user_id", "user-1") != log.sanitizeValue("user_id", "user-1") {
		t.Fatalf("child logger must keep the hash salt")
	}
}

func TestNew_BuildsBothModes(t *testing.T) {
	for _, mode := range []string{"development", "production", "PROD", ""} {
		log, err := New(Config{Mode: mode})
		if err != nil {
			t.Fatalf("mode %q: %v", mode, err)
		}
		if log == nil || log.SugaredLogger == nil {
			t.Fatalf("mode %q: logger not built", mode)
		}
	}
}
