package runner

import (
	"github.com/pkg/errors"

	"github.com/c9s/tarq/pkg/config"
	"github.com/c9s/tarq/pkg/datasource/csvsource"
	"github.com/c9s/tarq/pkg/datasource/jsonsource"
	"github.com/c9s/tarq/pkg/types"
)

// LoadSeries reads every source file with the given format and joins the
// bars into one series in file order.
func LoadSeries(files []string, format string) (*types.Series, error) {
	var series types.Series

	for _, file := range files {
		s, err := readSeries(file, format)
		if err != nil {
			return nil, err
		}

		log.Debugf("loaded %d bars from %s", s.Len(), file)
		for i := 0; i < s.Len(); i++ {
			series.Append(s.Bar(i))
		}
	}

	if series.Len() == 0 {
		return nil, errors.Errorf("no bars found in %v", files)
	}

	return &series, nil
}

func readSeries(file, format string) (*types.Series, error) {
	if format == config.SourceFormatJSON {
		return jsonsource.ReadSeriesFromJSON(file)
	}

	f, err := csvsource.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	return csvsource.ReadSeriesFromCSV(file, f)
}
