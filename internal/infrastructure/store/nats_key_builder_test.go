// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package store

import (
	"strings"
	"testing"
)

func TestKeyBuilder_EntityKey(t *testing.T) {
	kb := NewKeyBuilder("")

	key := kb.EntityKey(KeyPrefixMeeting, "uid-123")
	if key != "meeting/uid-123" {
		t.Errorf("expected meeting/uid-123, got %s", key)
	}
}

func TestKeyBuilder_IndexKey(t *testing.T) {
	kb := NewKeyBuilder("")

	key := kb.IndexKey(KeyPrefixIndexEmail, "grace@example.com", "user-1")
	if key != "index/email/grace@example.com/user-1" {
		t.Errorf("unexpected key: %s", key)
	}
}

func TestKeyBuilder_EncodeDecodeRoundTrip(t *testing.T) {
	kb := NewKeyBuilder("")

	original := "index/email/grace@example.com/user-1"
	encoded, err := kb.EncodeKey(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(encoded, "@") || strings.Contains(encoded, "/") {
		t.Errorf("encoded key carries invalid characters: %s", encoded)
	}

	decoded, err := kb.DecodeKey(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != "/"+original {
		t.Errorf("expected /%s, got %s", original, decoded)
	}
}

func TestKeyBuilder_EncodedKeysPreserveWildcards(t *testing.T) {
	kb := NewKeyBuilder("")

	encoded, err := kb.EncodeKey("user/*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(encoded, ".*") {
		t.Errorf("expected wildcard to pass through, got %s", encoded)
	}
}
