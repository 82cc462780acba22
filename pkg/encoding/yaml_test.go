package encoding

import (
	"os"
	"path/filepath"
	"testing"
)

// testMessageYAML is a test structure to use for encoding tests using YAML.
type testMessageYAML struct {
	Upstream struct {
		URL    string `yaml:"url"`
		Branch string `yaml:"branch"`
	} `yaml:"upstream"`
}

const (
	// testMessageYAMLString is the YAML-encoded form of the YAML test data.
	testMessageYAMLString = `
upstream:
  url: "https://example.org/protos.git"
  branch: "master"
`
	// testMessageYAMLURL is the YAML test URL.
	testMessageYAMLURL = "https://example.org/protos.git"
	// testMessageYAMLBranch is the YAML test branch.
	testMessageYAMLBranch = "master"
)

// TestLoadAndUnmarshalYAML tests that loading and unmarshaling YAML data
// succeeds.
func TestLoadAndUnmarshalYAML(t *testing.T) {
	// Write the test YAML to a temporary file and defer its cleanup.
	file, err := os.CreateTemp("", "stubgen_encoding")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	} else if _, err = file.Write([]byte(testMessageYAMLString)); err != nil {
		t.Fatal("unable to write data to temporary file:", err)
	} else if err = file.Close(); err != nil {
		t.Fatal("unable to close temporary file:", err)
	}
	defer os.Remove(file.Name())

	// Attempt to load and unmarshal.
	value := &testMessageYAML{}
	if err := LoadAndUnmarshalYAML(file.Name(), value); err != nil {
		t.Fatal("loadAndUnmarshal failed:", err)
	}

	// Verify test values.
	if value.Upstream.URL != testMessageYAMLURL {
		t.Error("test message URL mismatch:", value.Upstream.URL, "!=", testMessageYAMLURL)
	}
	if value.Upstream.Branch != testMessageYAMLBranch {
		t.Error("test message branch mismatch:", value.Upstream.Branch, "!=", testMessageYAMLBranch)
	}
}

// TestLoadAndUnmarshalYAMLUnknownKey tests that strict unmarshaling rejects
// unknown keys.
func TestLoadAndUnmarshalYAMLUnknownKey(t *testing.T) {
	// Write YAML with an unknown key to a temporary file.
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte("bogus: true\n"), 0644); err != nil {
		t.Fatal("unable to write temporary file:", err)
	}

	// Verify that unmarshaling fails.
	value := &testMessageYAML{}
	if err := LoadAndUnmarshalYAML(path, value); err == nil {
		t.Error("unknown key accepted by strict unmarshaling")
	}
}

// TestMarshalAndSaveYAMLRoundTrip tests that saving and reloading YAML data
// preserves its contents.
func TestMarshalAndSaveYAMLRoundTrip(t *testing.T) {
	// Compose a test value.
	value := &testMessageYAML{}
	value.Upstream.URL = testMessageYAMLURL
	value.Upstream.Branch = testMessageYAMLBranch

	// Save it.
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := MarshalAndSaveYAML(path, value); err != nil {
		t.Fatal("unable to marshal and save:", err)
	}

	// Reload it.
	reloaded := &testMessageYAML{}
	if err := LoadAndUnmarshalYAML(path, reloaded); err != nil {
		t.Fatal("unable to reload:", err)
	}

	// Verify the round trip.
	if reloaded.Upstream.URL != value.Upstream.URL {
		t.Error("URL mismatch after round trip")
	}
	if reloaded.Upstream.Branch != value.Upstream.Branch {
		t.Error("branch mismatch after round trip")
	}
}
