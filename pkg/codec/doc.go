// Package codec provides the primitive field codec for STDF datalogs.
//
// The codec package implements reading and writing of the primitive wire types used by
// STDF V4 records. It knows nothing about record layouts; the record package builds
// on it to decode and encode complete records.
//
// # Byte Order
//
// STDF files are written in the byte order of the CPU that produced them. The order is
// fixed once per stream (from the FAR record) and passed explicitly to every Reader and
// Writer as a ByteOrder value:
//
//	r := codec.NewReader(body, codec.LittleEndian)
//	w := codec.NewWriter(codec.BigEndian)
//
// # Wire Types
//
// Fixed width:
//   - U1, U2, U4, U8: unsigned integers
//   - I1, I2, I4: signed integers
//   - R4, R8: IEEE-754 floats
//   - C1, B1: single character / single byte of flags
//
// Variable width:
//   - Cn: one length byte (0-255) followed by that many characters
//   - Sn: two length bytes (0-65535) followed by that many characters
//   - Cf: fixed length string, length taken from a companion field
//   - Bn: one length byte followed by that many bytes
//   - Dn: two bytes holding a bit count, followed by ceil(bits/8) bytes
//   - N1 arrays: 4-bit values packed two per byte, low nibble first
//
// # Error Handling
//
// A Reader never reads past the end of its buffer. When a field needs more bytes than
// remain, the read returns an error wrapping ErrInsufficientData and the cursor does
// not move, so a length-prefixed value is never partially consumed.
//
// A Writer rejects values that cannot be represented by their length prefix with an
// error wrapping ErrFieldOverflow.
//
// # Thread Safety
//
// Reader and Writer are cursors and must not be shared between goroutines. ByteOrder
// is a plain value and safe to copy.
package codec
