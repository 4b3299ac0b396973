package archive

const (
	// Magic identifies an hfm archive. It is stored little-endian, so files start
	// with the bytes "HF".
	Magic uint16 = 0x4648

	// Option bits
	EndiannessMask   = 0x01 // 0=little, 1=big
	ReservedBitsMask = 0xFE // must be zero

	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 16
	// KeyOffset is the byte offset where the key section starts.
	KeyOffset = HeaderSize
)
