package contract

import "forestlab/sdk"

// Storage key prefixes. One byte per record family keeps keys compact and the
// families contiguous in the host kv.
const (
	// kPlatform stores the singleton Platform registry record.
	kPlatform byte = 0x01
	// kProject stores serialized Project records by id.
	kProject byte = 0x02
	// kStakePosition houses StakePosition records (project + participant scoped).
	kStakePosition byte = 0x03
	// kEpochRewards stores the live per-project EpochRewards record.
	kEpochRewards byte = 0x04
	// kLockup stores Lockup records (project + participant scoped).
	kLockup byte = 0x05
	// kCrankInfo stores the singleton automation registry.
	kCrankInfo byte = 0x06
	// kRestakeConfig stores per-project restake policy.
	kRestakeConfig byte = 0x07
	// kMultisigConfig stores per-project signer policy.
	kMultisigConfig byte = 0x08
	// kProjectIndex lists all registered project ids for iteration.
	kProjectIndex byte = 0x0F
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so keys
// stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// platformKey is the fixed singleton slot for the registry.
func platformKey() string {
	return string([]byte{kPlatform})
}

// projectKey builds a storage key string for a project by id.
func projectKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProject
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// stakePositionKey mixes project id plus address bytes so positions are
// addressable without nested maps in host storage.
func stakePositionKey(projectID uint64, addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kStakePosition)
	buf = packU64LE(projectID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// epochRewardsKey sits in prefix 0x04, one live record per project.
func epochRewardsKey(projectID uint64) string {
	var buf [9]byte
	buf[0] = kEpochRewards
	packU64LEInline(projectID, buf[1:])
	return string(buf[:])
}

// lockupKey mirrors stake position keys but keeps locks in a separate prefix.
func lockupKey(projectID uint64, addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kLockup)
	buf = packU64LE(projectID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// crankInfoKey is the fixed singleton slot for the automation registry.
func crankInfoKey() string {
	return string([]byte{kCrankInfo})
}

// restakeConfigKey uses prefix 0x07 so policy sits next to rewards but not collide.
func restakeConfigKey(projectID uint64) string {
	var buf [9]byte
	buf[0] = kRestakeConfig
	packU64LEInline(projectID, buf[1:])
	return string(buf[:])
}

// multisigConfigKey encodes id under the 0x08 prefix.
func multisigConfigKey(projectID uint64) string {
	var buf [9]byte
	buf[0] = kMultisigConfig
	packU64LEInline(projectID, buf[1:])
	return string(buf[:])
}

// projectIndexKey is the fixed slot listing registered project ids.
func projectIndexKey() string {
	return string([]byte{kProjectIndex})
}
