//go:build !hya_noyaml

package capability

const yamlEnabled = true
