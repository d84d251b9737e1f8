// Export command resolves the catalogue and writes the addon archive.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dukaforge/chronicler/internal/export"
	"github.com/dukaforge/chronicler/internal/jsondb"
	"github.com/dukaforge/chronicler/pkg/types"
)

var (
	flagOutput string
	flagUnpack string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalogue as an addon data archive",
	Long: `Export resolves every collection, event, faction, and character in the
database, renders the addon script and manifest files, compile-checks the
generated Lua, and writes the result as a zip archive. Rows with broken
required references are dropped from the output and reported on stderr.

Example:
  chronicler export
  chronicler export --output warcraft.zip
  chronicler export --unpack ./dist`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagOutput, "output", "", "archive path (default from config)")
	exportCmd.Flags().StringVar(&flagUnpack, "unpack", "", "write files into a directory instead of a zip archive")
}

func runExport(cmd *cobra.Command, args []string) error {
	req, failures, err := resolveCatalogue()
	if err != nil {
		return err
	}
	for _, f := range failures {
		fmt.Fprintf(os.Stderr, "dropped: %s\n", f)
	}

	gen := export.NewGenerator(sess.log)
	files, err := gen.Generate(req)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("nothing to export: no collections in database")
		return nil
	}

	if err := export.VerifyScripts(files); err != nil {
		return err
	}

	var packager export.Packager
	target := flagOutput
	if flagUnpack != "" {
		packager = dirPackager{dir: flagUnpack}
		target = flagUnpack
	} else {
		if target == "" {
			target = sess.cfg.Output
		}
		packager = zipPackager{path: target}
	}

	if err := packager.Pack(files); err != nil {
		return err
	}
	fmt.Printf("exported %d files to %s\n", len(files), target)
	return nil
}

// resolveCatalogue loads every table and resolves the rows into the export
// request. Failures carry the table and row id of each dropped row.
func resolveCatalogue() (export.Request, []string, error) {
	var req export.Request
	var failures []string

	collectionRows, err := jsondb.GetAll[types.CollectionRow](sess.db, types.TableCollections, nil)
	if err != nil {
		return req, nil, fmt.Errorf("load collections: %w", err)
	}
	req.Collections = sess.resolver.Collections(collectionRows)

	eventRows, err := jsondb.GetAll[types.EventRow](sess.db, types.TableEvents, nil)
	if err != nil {
		return req, nil, fmt.Errorf("load events: %w", err)
	}
	events, dropped := sess.resolver.Events(eventRows)
	req.Events = events
	for _, d := range dropped {
		failures = append(failures, fmt.Sprintf("events/%d: %v", d.RowID, d.Err))
	}

	factionRows, err := jsondb.GetAll[types.FactionRow](sess.db, types.TableFactions, nil)
	if err != nil {
		return req, nil, fmt.Errorf("load factions: %w", err)
	}
	factions, dropped := sess.resolver.Factions(factionRows)
	req.Factions = factions
	for _, d := range dropped {
		failures = append(failures, fmt.Sprintf("factions/%d: %v", d.RowID, d.Err))
	}

	characterRows, err := jsondb.GetAll[types.CharacterRow](sess.db, types.TableCharacters, nil)
	if err != nil {
		return req, nil, fmt.Errorf("load characters: %w", err)
	}
	characters, dropped := sess.resolver.Characters(characterRows)
	req.Characters = characters
	for _, d := range dropped {
		failures = append(failures, fmt.Sprintf("characters/%d: %v", d.RowID, d.Err))
	}

	return req, failures, nil
}

// dirPackager writes export files under a directory, creating the archive
// layout on disk instead of zipping it.
type dirPackager struct {
	dir string
}

func (p dirPackager) Pack(files []export.File) error {
	for _, f := range files {
		path := filepath.Join(p.dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create dir for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}
	return nil
}
