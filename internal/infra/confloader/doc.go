// Package confloader provides configuration loading for the benchmark
// driver.
//
// It wraps koanf and layers several sources into one typed struct:
//
//   - Files: YAML
//   - Environment variables: LISTSET_SECTION_KEY
//   - Overrides: a flat map, typically built from command-line flags
//
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags)
//  2. Environment variables
//  3. Configuration file
//  4. Values already present in the target struct (defaults)
package confloader
