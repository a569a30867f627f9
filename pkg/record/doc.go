// Package record models STDF V4 and V4-2007 records and converts them to and
// from their binary form.
//
// # Records
//
// Every record kind defined by the standard has a struct (FAR, MIR, PTR, ...)
// implementing Record. Records the table does not know, including the reserved
// types 180 and 181, decode as *Unknown and keep their body bytes, so they
// encode back to exactly what was read.
//
// # Schema Table
//
// The Table maps a (type, subtype) pair to a Schema: the ordered list of fields
// with their wire types, presence and sentinel values. Schemas are derived from
// the record structs themselves, so the table and the codec always agree.
//
// # Decoding
//
// A RecordCodec decodes a body in the byte order of the stream it came from:
//
//	c := record.NewRecordCodec(codec.LittleEndian)
//	r, err := c.Decode(h, body)
//	if ptr, ok := r.(*record.PTR); ok {
//		fmt.Println(ptr.TestNum, ptr.Result)
//	}
//
// Producers may omit optional fields from the end of a record. When the body
// ends on a field boundary, the remaining fields hold their sentinel values
// (empty string, zero, or a field specific value such as 65535 for MIR.BURN_TIM).
// A field that starts but does not finish inside the body is an error:
// *CorruptRecordError, which matches ErrCorruptRecord.
//
// # Encoding
//
// Encode writes every field and recomputes the header length. The length of a
// count driven array must equal its count field, with one exception: an empty
// array whose count is non-zero ends the body there, provided all later fields
// still hold their sentinels. That is the shape Decode produces for a body cut
// short at that array.
//
// # Filtering
//
// Kind is a bit set over record kinds. Masks combine with |:
//
//	mask := record.KindPIR | record.KindPTR | record.KindPRR
//	if h.IsType(mask) { ... }
package record
