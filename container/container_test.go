package container

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msacio/msac/codec"
	"github.com/msacio/msac/transform"
)

const sampleMSA = `# generated for a test fixture
# second header line
seq1      ACGTACGTAC
seq2      ACGT..GTAC
seq3      AC..ACGTAC
/
`

// parseRows extracts "<id> <data>" pairs from a decompressed text skeleton.
func parseRows(t *testing.T, text string) map[string]string {
	t.Helper()
	rows := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "/") {
			continue
		}
		fields := strings.Fields(line)
		require.Len(t, fields, 2, "line %q", line)
		rows[fields[0]] = fields[1]
	}

	return rows
}

func compressSample(t *testing.T, cfg Config, opts ...Option) []byte {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Compress(strings.NewReader(sampleMSA), &out, cfg, opts...))

	return out.Bytes()
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	cdc := codec.NewZstd()
	cfg := Config{TileRows: 2, TileCols: 4, CodecLevel: 3, Mode: transform.None, Codec: cdc}

	compressed := compressSample(t, cfg)

	src := &seekBuf{data: compressed}
	dst := &seekBuf{}
	require.NoError(t, Decompress(src, dst, transform.None, cdc))

	rows := parseRows(t, string(dst.Bytes()))
	require.Equal(t, "ACGTACGTAC", rows["seq1"])
	require.Equal(t, "ACGT..GTAC", rows["seq2"])
	require.Equal(t, "AC..ACGTAC", rows["seq3"])
}

func TestCompressDecompress_MultiTile(t *testing.T) {
	// A=2 rows, B=4 cols over 3 rows x 10 cols produces more than one
	// row-band and more than one column-band: 2 row-bands x 3 column-bands.
	cdc := codec.NewZstd()
	cfg := Config{TileRows: 2, TileCols: 4, CodecLevel: 1, Mode: transform.None, Codec: cdc}

	compressed := compressSample(t, cfg)

	src := &seekBuf{data: compressed}
	dst := &seekBuf{}
	require.NoError(t, Decompress(src, dst, transform.None, cdc))

	rows := parseRows(t, string(dst.Bytes()))
	require.Len(t, rows, 3)
	require.Equal(t, "ACGT..GTAC", rows["seq2"])
}

func TestDecompressRows_SelectiveAgreesWithFull(t *testing.T) {
	cdc := codec.NewZstd()
	cfg := Config{TileRows: 2, TileCols: 4, CodecLevel: 3, Mode: transform.None, Codec: cdc}
	compressed := compressSample(t, cfg)

	fullDst := &seekBuf{}
	require.NoError(t, Decompress(&seekBuf{data: compressed}, fullDst, transform.None, cdc))
	fullRows := parseRows(t, string(fullDst.Bytes()))

	selDst := &seekBuf{}
	require.NoError(t, DecompressRows(&seekBuf{data: compressed}, selDst, transform.None, cdc, []string{"seq1", "seq3"}))
	selRows := parseRows(t, string(selDst.Bytes()))

	require.Len(t, selRows, 2)
	require.Equal(t, fullRows["seq1"], selRows["seq1"])
	require.Equal(t, fullRows["seq3"], selRows["seq3"])
}

func TestDecompressColumns_SelectiveAgreesWithFull(t *testing.T) {
	cdc := codec.NewZstd()
	cfg := Config{TileRows: 2, TileCols: 4, CodecLevel: 3, Mode: transform.None, Codec: cdc}
	compressed := compressSample(t, cfg)

	fullDst := &seekBuf{}
	require.NoError(t, Decompress(&seekBuf{data: compressed}, fullDst, transform.None, cdc))
	fullRows := parseRows(t, string(fullDst.Bytes()))

	cols := []int{0, 3, 7}
	colDst := &seekBuf{}
	require.NoError(t, DecompressColumns(&seekBuf{data: compressed}, colDst, transform.None, cdc, cols))
	colRows := parseRows(t, string(colDst.Bytes()))

	sortedCols := append([]int(nil), cols...)
	sort.Ints(sortedCols)

	for id, full := range fullRows {
		got, ok := colRows[id]
		require.True(t, ok)
		for i, c := range sortedCols {
			require.Equal(t, full[c], got[i])
		}
	}
}

func TestDecompressColumnRange(t *testing.T) {
	cdc := codec.NewZstd()
	cfg := Config{TileRows: 2, TileCols: 4, CodecLevel: 3, Mode: transform.None, Codec: cdc}
	compressed := compressSample(t, cfg)

	fullDst := &seekBuf{}
	require.NoError(t, Decompress(&seekBuf{data: compressed}, fullDst, transform.None, cdc))
	fullRows := parseRows(t, string(fullDst.Bytes()))

	rangeDst := &seekBuf{}
	require.NoError(t, DecompressColumnRange(&seekBuf{data: compressed}, rangeDst, transform.None, cdc, 2, 5))
	rangeRows := parseRows(t, string(rangeDst.Bytes()))

	for id, full := range fullRows {
		got := rangeRows[id]
		require.Equal(t, full[2:6], got)
	}
}

func TestCompressDecompress_ReduceA_LeadingGapsLost(t *testing.T) {
	cdc := codec.NewZstd()
	cfg := Config{TileRows: 2, TileCols: 4, CodecLevel: 3, Mode: transform.ReduceA, Codec: cdc}
	compressed := compressSample(t, cfg)

	dst := &seekBuf{}
	require.NoError(t, Decompress(&seekBuf{data: compressed}, dst, transform.ReduceA, cdc))
	rows := parseRows(t, string(dst.Bytes()))

	// reduceA runs on each tile row separately. With B=4, seq2's gap run
	// (columns 4-5) starts the row of the second column tile ("..GT"), so
	// reduceA drops it and the remaining cells shift left. seq3's run
	// (columns 2-3) ends its first tile row and survives; seq1 has no gaps.
	require.Equal(t, "ACGTACGTAC", rows["seq1"])
	require.Equal(t, "ACGTGTAC", rows["seq2"])
	require.Equal(t, "AC..ACGTAC", rows["seq3"])
}

func TestCompress_Deterministic(t *testing.T) {
	cdc := codec.NewZstd()
	cfg := Config{TileRows: 2, TileCols: 4, CodecLevel: 3, Mode: transform.ReduceB, Codec: cdc}

	a := compressSample(t, cfg)
	b := compressSample(t, cfg)
	require.Equal(t, a, b)
}

func TestCompressDecompress_ExplicitFooterCount(t *testing.T) {
	cdc := codec.NewZstd()
	cfg := Config{TileRows: 2, TileCols: 4, CodecLevel: 3, Mode: transform.None, Codec: cdc}
	compressed := compressSample(t, cfg, WithExplicitFooterCount())

	dst := &seekBuf{}
	require.NoError(t, Decompress(&seekBuf{data: compressed}, dst, transform.None, cdc, WithExplicitFooterCount()))
	rows := parseRows(t, string(dst.Bytes()))
	require.Equal(t, "ACGTACGTAC", rows["seq1"])
}

func TestCompressDecompress_AutoDetectMode(t *testing.T) {
	cdc := codec.NewZstd()
	cfg := Config{TileRows: 2, TileCols: 4, CodecLevel: 3, Mode: transform.ReduceB, Codec: cdc}
	compressed := compressSample(t, cfg, WithStoredMode())

	dst := &seekBuf{}
	// Pass the wrong mode explicitly; WithAutoDetectMode must override it
	// with the stored "#__msac_p:2" header.
	require.NoError(t, Decompress(&seekBuf{data: compressed}, dst, transform.None, cdc, WithAutoDetectMode()))
	rows := parseRows(t, string(dst.Bytes()))
	require.Equal(t, "ACGT..GTAC", rows["seq2"])
}

func TestCompressDecompress_Magic(t *testing.T) {
	cdc := codec.NewZstd()
	cfg := Config{TileRows: 2, TileCols: 4, CodecLevel: 3, Mode: transform.None, Codec: cdc}
	compressed := compressSample(t, cfg, WithMagic())

	require.Equal(t, "MSA1", string(compressed[:4]))

	dst := &seekBuf{}
	require.NoError(t, Decompress(&seekBuf{data: compressed}, dst, transform.None, cdc, WithMagic()))
	rows := parseRows(t, string(dst.Bytes()))
	require.Equal(t, "AC..ACGTAC", rows["seq3"])
}

func TestCompressDecompress_Magic_BadPrefix(t *testing.T) {
	cdc := codec.NewZstd()
	cfg := Config{TileRows: 2, TileCols: 4, CodecLevel: 3, Mode: transform.None, Codec: cdc}
	compressed := compressSample(t, cfg, WithMagic())
	compressed[0] = 'X'

	dst := &seekBuf{}
	err := Decompress(&seekBuf{data: compressed}, dst, transform.None, cdc, WithMagic())
	require.Error(t, err)
}
