//go:build hya_notoml

package capability

const tomlEnabled = false
