package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvseries/series"
	"github.com/katalvlaran/lvseries/seriesio"
	"github.com/katalvlaran/lvseries/symbol"
)

const jsonExt = ".json"

// readSeries loads a text or JSON (by extension) series file. Skipped lines
// are logged, not returned.
func readSeries(path string, table *symbol.Table, log logr.Logger, opts []seriesio.Option) (*series.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts = append(opts[:len(opts):len(opts)], seriesio.WithTable(table))
	if strings.EqualFold(filepath.Ext(path), jsonExt) {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return seriesio.UnmarshalJSON(data, opts...)
	}

	s, skipped, err := seriesio.Read(f, opts...)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		log.Info("skipped malformed lines", "file", path, "count", len(skipped))
	}

	return s, nil
}

// writeSeries writes s to path, or to w when path is empty or "-".
func writeSeries(w io.Writer, path string, s *series.Series, opts []seriesio.Option) error {
	if path == "" || path == "-" {
		return seriesio.Write(w, s, opts...)
	}
	if strings.EqualFold(filepath.Ext(path), jsonExt) {
		data, err := seriesio.MarshalJSON(s, opts...)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = seriesio.Write(f, s, opts...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", arg, err)
	}

	return n, nil
}
