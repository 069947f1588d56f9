package id

import (
	"strings"
	"testing"
)

func TestNewTransactionID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewTransactionID()
		if !strings.HasPrefix(id, "txn_") {
			t.Fatalf("expected txn_ prefix, got %s", id)
		}
		if len(id) != len("txn_")+26 {
			t.Fatalf("unexpected id length: %s", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
