package tapejson

import (
	"fmt"
	"io"
)

// Dump writes a line-per-record debug listing of the tape to w: a readable
// view of what Scan produced when something looks wrong, not part of the
// core contract.
func (d *Document) Dump(w io.Writer) error {
	for idx, r := range d.Tape {
		switch {
		case r.Kind.IsContainer():
			if _, err := fmt.Fprintf(w, "%d : %s\t// jump %d\n", idx, r.Kind, r.Jump); err != nil {
				return err
			}
		case r.Kind == Key || r.Kind == String:
			raw := d.Buffer[r.Offset : r.Offset+r.Length]
			if _, err := fmt.Fprintf(w, "%d : %s %q (o:%d, l:%d)\n", idx, r.Kind, raw, r.Offset, r.Length); err != nil {
				return err
			}
		default:
			raw := d.Buffer[r.Offset : r.Offset+r.Length]
			if _, err := fmt.Fprintf(w, "%d : %s %s (o:%d, l:%d)\n", idx, r.Kind, raw, r.Offset, r.Length); err != nil {
				return err
			}
		}
	}
	return nil
}
