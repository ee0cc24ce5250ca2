package cli

import "testing"

func TestRootCommandFlags(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"config", "verbose", "debug"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag --%s", name)
		}
	}
	for _, name := range []string{"windowed", "replay"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}

	if cmd.Use != "lumina-welcome" {
		t.Errorf("unexpected command name %q", cmd.Use)
	}
	if cmd.Version == "" {
		t.Error("version string not wired")
	}
}
