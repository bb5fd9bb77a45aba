package cmd

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/selectql/pkg/consts"
	"github.com/pseudomuto/selectql/pkg/record"
)

// sqlFiles returns path itself when it is a file, or every .sql file below it
// in lexicographical order when it is a directory.
func sqlFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access path: %s", path)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, p)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no SQL files found in directory: %s", path)
	}

	return files, nil
}

// writeTree encodes tree to w in the requested output format.
func writeTree(w io.Writer, tree record.Tree, output string, indent int) error {
	switch output {
	case consts.OutputJSON:
		return record.EncodeJSON(w, tree, indent)
	case consts.OutputYAML:
		return record.EncodeYAML(w, tree, indent)
	default:
		return errors.Errorf("unsupported output format: %s", output)
	}
}
