// Package listflags registers the task filter flags shared by list-style
// commands.
package listflags

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/amonks/devflow/store"
	"github.com/amonks/devflow/task"
	"github.com/amonks/devflow/view"
)

// TaskFilters holds the raw flag values.
type TaskFilters struct {
	Search   string
	Status   string
	Priority string
	Type     string
}

// filterAliases maps alternate flag spellings to the canonical names.
var filterAliases = map[string]string{
	"query": "search",
	"kind":  "type",
}

// AddTaskFilters adds --search, --status, --priority and --type to cmd.
// --query and --kind are accepted as aliases.
func AddTaskFilters(cmd *cobra.Command, target *TaskFilters) {
	flags := cmd.Flags()
	flags.StringVar(&target.Search, "search", "", "Match title, description or tags (case-insensitive)")
	flags.StringVar(&target.Status, "status", store.FilterAll, "Filter by status (all, todo, doing, done)")
	flags.StringVar(&target.Priority, "priority", store.FilterAll, "Filter by priority (all, high, medium, low)")
	flags.StringVar(&target.Type, "type", store.FilterAll, "Filter by type (all, feature, bug, refactor, research)")
	setFlagAliases(flags, filterAliases)
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}

// Query validates the flags and converts them to a view query.
func (f TaskFilters) Query() (view.Query, error) {
	q := view.Query{Search: strings.TrimSpace(f.Search)}
	var err error
	if q.Status, err = selector(f.Status, func(s string) (string, error) {
		v, err := task.ParseStatus(s)
		return string(v), err
	}); err != nil {
		return view.Query{}, err
	}
	if q.Priority, err = selector(f.Priority, func(s string) (string, error) {
		v, err := task.ParsePriority(s)
		return string(v), err
	}); err != nil {
		return view.Query{}, err
	}
	if q.Type, err = selector(f.Type, func(s string) (string, error) {
		v, err := task.ParseType(s)
		return string(v), err
	}); err != nil {
		return view.Query{}, err
	}
	return q, nil
}

func selector(value string, parse func(string) (string, error)) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, store.FilterAll) {
		return store.FilterAll, nil
	}
	return parse(value)
}
