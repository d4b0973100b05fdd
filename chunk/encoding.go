package chunk

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/genomere/covstats/errs"
	"github.com/genomere/covstats/rle"
)

// encodeMatrix serializes a coverage matrix into the chunk payload format:
// uvarint row and column counts, then per column a uvarint run count followed
// by (uvarint length, little-endian float64 bits) pairs.
func encodeMatrix(m *rle.Matrix) []byte {
	rows, cols := m.Dims()

	buf := binary.AppendUvarint(nil, uint64(rows))
	buf = binary.AppendUvarint(buf, uint64(cols))
	for j := 0; j < cols; j++ {
		col := m.Column(j)
		buf = binary.AppendUvarint(buf, uint64(col.Runs()))
		col.Do(func(value float64, length int) {
			buf = binary.AppendUvarint(buf, uint64(length))
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(value))
		})
	}

	return buf
}

// decodeMatrix parses a chunk payload back into a coverage matrix. Structural
// problems (truncation, run counts that cannot fit the remaining bytes,
// column lengths that disagree with the row count) yield errs.ErrCorruptChunk.
func decodeMatrix(payload []byte) (*rle.Matrix, error) {
	rows, payload, err := readUvarint(payload)
	if err != nil {
		return nil, err
	}
	ncols, payload, err := readUvarint(payload)
	if err != nil {
		return nil, err
	}
	if ncols == 0 {
		return nil, fmt.Errorf("%w: payload declares zero columns", errs.ErrCorruptChunk)
	}

	cols := make([]*rle.Vector, ncols)
	for j := range cols {
		var nruns uint64
		nruns, payload, err = readUvarint(payload)
		if err != nil {
			return nil, err
		}
		// Each run takes at least 9 bytes (1 varint byte + 8 value bytes).
		if nruns > uint64(len(payload))/9 {
			return nil, fmt.Errorf("%w: column %d declares %d runs with %d bytes left",
				errs.ErrCorruptChunk, j, nruns, len(payload))
		}

		values := make([]float64, nruns)
		lengths := make([]int, nruns)
		for k := range values {
			var length uint64
			length, payload, err = readUvarint(payload)
			if err != nil {
				return nil, err
			}
			if len(payload) < 8 {
				return nil, fmt.Errorf("%w: truncated run value", errs.ErrCorruptChunk)
			}
			lengths[k] = int(length)
			values[k] = math.Float64frombits(binary.LittleEndian.Uint64(payload))
			payload = payload[8:]
		}

		col, err := rle.New(values, lengths)
		if err != nil {
			return nil, fmt.Errorf("%w: column %d: %v", errs.ErrCorruptChunk, j, err)
		}
		if uint64(col.Len()) != rows {
			return nil, fmt.Errorf("%w: column %d has %d rows, header declares %d",
				errs.ErrCorruptChunk, j, col.Len(), rows)
		}
		cols[j] = col
	}
	if len(payload) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after last column", errs.ErrCorruptChunk, len(payload))
	}

	return rle.NewMatrix(cols)
}

func readUvarint(buf []byte) (uint64, []byte, error) {
	v, n := binary.Uvarint(buf)
	if n <= 0 {
		return 0, nil, fmt.Errorf("%w: truncated varint", errs.ErrCorruptChunk)
	}

	return v, buf[n:], nil
}
