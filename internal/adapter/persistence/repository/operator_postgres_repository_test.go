package repository

import "testing"

func TestLegacyDigest(t *testing.T) {
	// Digest of the seeded admin password in the legacy store.
	if got := legacyDigest("123456"); got != "e10adc3949ba59abbe56e057f20f883e" {
		t.Fatalf("unexpected digest: %s", got)
	}
	if got := legacyDigest(""); got != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Fatalf("unexpected empty digest: %s", got)
	}
}
