package table

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// ErrStringTooLong is returned by serializeRow when Username or Email
// exceeds its effective maximum (MaxUsernameLen, MaxEmailLen).
var ErrStringTooLong = errors.New("table: string exceeds maximum length")

// Row is the table's single fixed schema: a u32 id plus two
// null-terminated, fixed-width string fields.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// serializeRow writes row into dst, which must be exactly RowSize bytes.
// Username and Email are written as raw bytes followed by a NUL terminator;
// unused trailing bytes are left zeroed.
func serializeRow(row Row, dst []byte) error {
	if len(dst) != int(RowSize) {
		panic("table: serializeRow: dst has the wrong length")
	}
	if uint32(len(row.Username)) > MaxUsernameLen || uint32(len(row.Email)) > MaxEmailLen {
		return ErrStringTooLong
	}

	for i := range dst {
		dst[i] = 0
	}

	binary.LittleEndian.PutUint32(dst[idOffset:idOffset+idSize], row.ID)

	usernameOff := idOffset + idSize
	copy(dst[usernameOff:usernameOff+usernameSize], row.Username)

	emailOff := usernameOff + usernameSize
	copy(dst[emailOff:emailOff+emailSize], row.Email)

	return nil
}

// deserializeRow reads a RowSize-byte slice back into a Row, trimming each
// string field at its first NUL byte.
func deserializeRow(src []byte) Row {
	id := binary.LittleEndian.Uint32(src[idOffset : idOffset+idSize])

	usernameOff := idOffset + idSize
	emailOff := usernameOff + usernameSize

	return Row{
		ID:       id,
		Username: cString(src[usernameOff : usernameOff+usernameSize]),
		Email:    cString(src[emailOff : emailOff+emailSize]),
	}
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
