package offline_feeder

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/sbezverk/seqtools/wire"
)

// AppendRecords appends every sequence as a record to the sequence file fn, creating it if needed.
func AppendRecords(fn string, seqs ...[]float64) error {
	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open offline sequence file %s with error: %+v", fn, err)
	}
	for i, s := range seqs {
		if err := wire.WriteRecord(f, s); err != nil {
			f.Close()
			return fmt.Errorf("failed to write record %d to %s with error: %w", i, fn, err)
		}
	}
	glog.V(5).Infof("appended %d records to %s", len(seqs), fn)

	return f.Close()
}
