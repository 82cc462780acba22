package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stubgen-io/stubgen/pkg/encoding"
)

const (
	// ManifestName is the name of the optional manifest file at the root of
	// the source tree. If present, it overrides the built-in manifest.
	ManifestName = "stubgen.yaml"
	// EnvironmentFileName is the name of the optional dotenv file at the root
	// of the source tree. If present, its contents are merged beneath the
	// process environment for subprocess execution.
	EnvironmentFileName = "stubgen.env"
	// RecordName is the name of the generation record file written into the
	// stub root after a successful generation run.
	RecordName = "upstream.yaml"
)

// Upstream describes the upstream proto-definition repository.
type Upstream struct {
	// URL is the clone URL of the upstream repository.
	URL string `yaml:"url"`
	// Branch is the branch to clone and track.
	Branch string `yaml:"branch"`
}

// Group describes one proto group: a set of proto sources that are compiled
// together and relocated into a single flat destination package.
type Group struct {
	// Name is the human-readable name of the group.
	Name string `yaml:"name"`
	// Sources is a pattern (relative to the proto root) selecting the group's
	// proto source files.
	Sources string `yaml:"sources"`
	// Output is the slash-separated subtree (relative to the scratch
	// directory) into which the compiler emits the group's generated modules.
	// It mirrors the proto package namespace.
	Output string `yaml:"output"`
	// Package is the name of the group's flat destination package directory
	// beneath the stub root.
	Package string `yaml:"package"`
	// Modules enumerates the generated module files expected in the
	// destination package. It serves as the verification probe set.
	Modules []string `yaml:"modules"`
	// GRPC indicates whether or not to run the gRPC service generator for
	// the group.
	GRPC bool `yaml:"grpc"`
}

// Manifest describes a complete stub generation configuration. It makes the
// path constants and rewrite tables explicit configuration values rather than
// hidden globals.
type Manifest struct {
	// Upstream is the upstream repository specification.
	Upstream Upstream `yaml:"upstream"`
	// Checkout is the path (relative to the source tree root) of the upstream
	// checkout directory.
	Checkout string `yaml:"checkout"`
	// ProtoRoot is the path (relative to the checkout) of the proto source
	// root.
	ProtoRoot string `yaml:"protoRoot"`
	// Scratch is the path (relative to the source tree root) of the scratch
	// directory that receives compiler output.
	Scratch string `yaml:"scratch"`
	// StubRoot is the path (relative to the source tree root) of the stub
	// root directory containing the destination packages.
	StubRoot string `yaml:"stubRoot"`
	// ImportPath is the Go import path of the stub root package.
	ImportPath string `yaml:"importPath"`
	// Groups are the proto groups to compile and relocate.
	Groups []Group `yaml:"groups"`
	// RewritePrefixes maps namespaced import path prefixes (as emitted by the
	// compiler) to repo-local stub package import paths.
	RewritePrefixes map[string]string `yaml:"rewritePrefixes"`
	// RewriteDirect maps exact import paths to repo-local stub package import
	// paths.
	RewriteDirect map[string]string `yaml:"rewriteDirect"`
}

// DefaultManifest returns the built-in manifest, which describes the Cloud
// Bigtable v1 API surface.
func DefaultManifest() *Manifest {
	importPath := "github.com/stubgen-io/stubgen/genproto"
	return &Manifest{
		Upstream: Upstream{
			URL:    "https://github.com/GoogleCloudPlatform/cloud-bigtable-client.git",
			Branch: "master",
		},
		Checkout:   "cloud-bigtable-client",
		ProtoRoot:  "bigtable-protos/src/main/proto",
		Scratch:    "generated",
		StubRoot:   "genproto",
		ImportPath: importPath,
		Groups: []Group{
			{
				Name:    "bigtable",
				Sources: "google/bigtable/v1/*.proto",
				Output:  "google/bigtable/v1",
				Package: "bigtablepb",
				Modules: []string{
					"bigtable_data.pb.go",
					"bigtable_service_messages.pb.go",
					"bigtable_service.pb.go",
					"bigtable_service_grpc.pb.go",
				},
				GRPC: true,
			},
			{
				Name:    "api",
				Sources: "google/api/*.proto",
				Output:  "google/api",
				Package: "annotationspb",
				Modules: []string{
					"annotations.pb.go",
					"http.pb.go",
				},
			},
			{
				Name:    "empty",
				Sources: "google/protobuf/empty.proto",
				Output:  "google/protobuf",
				Package: "emptypb",
				Modules: []string{
					"empty.pb.go",
				},
			},
		},
		RewritePrefixes: map[string]string{
			"google/bigtable/v1": importPath + "/bigtablepb",
			"google/api":         importPath + "/annotationspb",
		},
		RewriteDirect: map[string]string{
			"github.com/golang/protobuf/ptypes/empty": importPath + "/emptypb",
		},
	}
}

// EnsureValid ensures that a manifest is valid.
func (m *Manifest) EnsureValid() error {
	// Verify the upstream specification.
	if m.Upstream.URL == "" {
		return fmt.Errorf("empty upstream URL")
	} else if m.Upstream.Branch == "" {
		return fmt.Errorf("empty upstream branch")
	}

	// Verify the path configuration. All paths are resolved relative to the
	// source tree root, so absolute values indicate a misconfiguration.
	for name, value := range map[string]string{
		"checkout":   m.Checkout,
		"protoRoot":  m.ProtoRoot,
		"scratch":    m.Scratch,
		"stubRoot":   m.StubRoot,
		"importPath": m.ImportPath,
	} {
		if value == "" {
			return fmt.Errorf("empty %s path", name)
		}
	}
	for name, value := range map[string]string{
		"checkout": m.Checkout,
		"scratch":  m.Scratch,
		"stubRoot": m.StubRoot,
	} {
		if filepath.IsAbs(value) {
			return fmt.Errorf("absolute %s path", name)
		}
	}

	// The scratch and stub root directories must not overlap, since cleanup
	// removes the scratch directory recursively.
	if m.Scratch == m.StubRoot {
		return fmt.Errorf("scratch and stub root paths coincide")
	}

	// Verify the groups.
	if len(m.Groups) == 0 {
		return fmt.Errorf("no proto groups defined")
	}
	packages := make(map[string]bool, len(m.Groups))
	for _, group := range m.Groups {
		if group.Name == "" {
			return fmt.Errorf("proto group with empty name")
		} else if group.Sources == "" {
			return fmt.Errorf("proto group %s has no source pattern", group.Name)
		} else if group.Output == "" || strings.HasPrefix(group.Output, "/") {
			return fmt.Errorf("proto group %s has invalid output subtree", group.Name)
		} else if group.Package == "" || strings.ContainsRune(group.Package, '/') {
			return fmt.Errorf("proto group %s has invalid destination package", group.Name)
		} else if len(group.Modules) == 0 {
			return fmt.Errorf("proto group %s has no expected modules", group.Name)
		}
		if packages[group.Package] {
			return fmt.Errorf("duplicate destination package %s", group.Package)
		}
		packages[group.Package] = true
	}

	// Verify the rewrite tables.
	for prefix, replacement := range m.RewritePrefixes {
		if prefix == "" || replacement == "" {
			return fmt.Errorf("empty prefix rewrite entry")
		}
	}
	for target, replacement := range m.RewriteDirect {
		if target == "" || replacement == "" {
			return fmt.Errorf("empty direct rewrite entry")
		}
	}

	// Success.
	return nil
}

// LoadManifest loads the manifest for the specified source tree root. If a
// manifest file exists at the root, its contents override the built-in
// defaults, otherwise the defaults are used as-is.
func LoadManifest(root string) (*Manifest, error) {
	// Start from the built-in manifest.
	manifest := DefaultManifest()

	// Apply any on-disk overrides.
	path := filepath.Join(root, ManifestName)
	if err := encoding.LoadAndUnmarshalYAML(path, manifest); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to load manifest: %w", err)
	}

	// Validate the result.
	if err := manifest.EnsureValid(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	// Success.
	return manifest, nil
}
