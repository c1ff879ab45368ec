package cnab_test

import (
	"strings"

	"github.com/abiiranathan/cnabsearch/cnab"
)

// put writes value at 1-indexed column pos of a width-wide blank record.
type put struct {
	pos   int
	value string
}

func record(width int, puts ...put) cnab.Record {
	line := []rune(strings.Repeat(" ", width))
	for _, p := range puts {
		for i, c := range []rune(p.value) {
			line[p.pos-1+i] = c
		}
	}
	return cnab.Record(string(line))
}

// segmentRecord builds a 240 column record with code at the segment column.
func segmentRecord(code string, puts ...put) cnab.Record {
	return record(240, append([]put{{1, "0010001300001"}, {14, code}}, puts...)...)
}

func companyRecord(name, address, zip, city, state string) cnab.Record {
	return segmentRecord("Q",
		put{19, name},
		put{44, address},
		put{74, zip},
		put{82, city},
		put{97, state},
	)
}
