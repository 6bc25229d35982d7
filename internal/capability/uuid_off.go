//go:build hya_nouuid

package capability

const uuidEnabled = false
