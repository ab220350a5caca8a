package formatter

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-conky-deadlines/internal/core/model"
)

type JSONFormatter struct {
	opts Options
}

func NewJSONFormatter(opts Options) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

func (f *JSONFormatter) Format(w io.Writer, groups []model.DateGroup) error {
	data, err := sonic.ConfigStd.MarshalIndent(BuildViews(groups, f.opts), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
