package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"

	"github.com/vegasq/coursecat/course"
)

// Codecs lists the compression names accepted by WriteParquet.
var Codecs = []string{"snappy", "gzip", "zstd", "brotli", "lz4", "none"}

func lookupCodec(name string) (compress.Codec, error) {
	switch strings.ToLower(name) {
	case "snappy", "":
		return &parquet.Snappy, nil
	case "gzip":
		return &parquet.Gzip, nil
	case "zstd":
		return &parquet.Zstd, nil
	case "brotli":
		return &parquet.Brotli, nil
	case "lz4":
		return &parquet.Lz4Raw, nil
	case "none", "uncompressed":
		return &parquet.Uncompressed, nil
	default:
		return nil, fmt.Errorf("unsupported compression codec %q (supported: %s)", name, strings.Join(Codecs, ", "))
	}
}

// WriteParquet writes courses to w as a Parquet file using the course.Course
// schema, so the result can be read back by the reader package.
func WriteParquet(w io.Writer, courses []course.Course, codec string) error {
	c, err := lookupCodec(codec)
	if err != nil {
		return err
	}

	writer := parquet.NewGenericWriter[course.Course](w, parquet.Compression(c))
	if _, err := writer.Write(courses); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
