// Package manifest reads the list of service providers to register, in
// order, from an HCL file.
//
//	# bootstrap/providers.hcl
//	provider "config" {}
//	provider "log" {}
//	provider "routing" {
//	  options = { bare = "true" }
//	}
//
// Block order is registration order.
package manifest

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/km-arc/go-facade/framework/container"
)

// Manifest is the decoded provider list.
type Manifest struct {
	Providers []Provider
}

// Provider is one `provider "<name>" {}` block.
type Provider struct {
	Name    string
	Options map[string]string
}

// hclManifestFile is the top-level structure of a manifest for decoding.
type hclManifestFile struct {
	Providers []*hclProvider `hcl:"provider,block"`
}

type hclProvider struct {
	Name    string            `hcl:"name,label"`
	Options map[string]string `hcl:"options,optional"`
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return Parse(src, path)
}

// Parse decodes manifest source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}

	var parsed hclManifestFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", filename, diags)
	}

	m := &Manifest{Providers: make([]Provider, 0, len(parsed.Providers))}
	seen := make(map[string]bool, len(parsed.Providers))
	for _, p := range parsed.Providers {
		if seen[p.Name] {
			return nil, fmt.Errorf("manifest %s: provider %q listed twice", filename, p.Name)
		}
		seen[p.Name] = true
		m.Providers = append(m.Providers, Provider{Name: p.Name, Options: p.Options})
	}
	return m, nil
}

// Names returns provider names in manifest order.
func (m *Manifest) Names() []string {
	out := make([]string, len(m.Providers))
	for i, p := range m.Providers {
		out[i] = p.Name
	}
	return out
}

// ── Catalog ──────────────────────────────────────────────────────────────────

// Constructor builds a provider from its manifest options.
type Constructor func(options map[string]string) (container.ServiceProvider, error)

// Catalog maps manifest names to provider constructors.
type Catalog map[string]Constructor

// Build instantiates every provider in the manifest, in order.
func (m *Manifest) Build(catalog Catalog) ([]container.ServiceProvider, error) {
	out := make([]container.ServiceProvider, 0, len(m.Providers))
	for _, p := range m.Providers {
		ctor, ok := catalog[p.Name]
		if !ok {
			return nil, fmt.Errorf("manifest: unknown provider %q", p.Name)
		}
		sp, err := ctor(p.Options)
		if err != nil {
			return nil, fmt.Errorf("manifest: provider %q: %w", p.Name, err)
		}
		out = append(out, sp)
	}
	return out, nil
}
