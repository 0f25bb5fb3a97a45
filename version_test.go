package govfi

import "testing"

func TestVersion(t *testing.T) {
	if v := Version(); v == "" {
		t.Error("Version() returned an empty string")
	}
}
