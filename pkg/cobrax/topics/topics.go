// Package topics provides a topic-based help system for Cobra CLI
// applications: long-form documentation loaded from a file system and
// exposed through a "topics" command.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one long-form help document.
type Topic struct {
	Name    string
	Format  string
	Content string
}

// Manager loads topics from a file system and attaches them to a root
// command.
type Manager struct {
	source   fs.FS
	dir      string
	topics   map[string]*Topic
	renderer Renderer
}

// New creates a Manager reading topic files from dir inside source.
// Markdown and plain text files are recognized.
func New(source fs.FS, dir string, renderer Renderer) *Manager {
	if renderer == nil {
		renderer = &PlainRenderer{}
	}
	return &Manager{
		source:   source,
		dir:      dir,
		topics:   make(map[string]*Topic),
		renderer: renderer,
	}
}

// scan loads every topic file under the manager's directory.
func (m *Manager) scan() error {
	entries, err := fs.ReadDir(m.source, m.dir)
	if err != nil {
		// No topics directory means no topics, not a failure
		return nil
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if ext != ".md" && ext != ".txt" {
			continue
		}
		content, err := fs.ReadFile(m.source, path.Join(m.dir, entry.Name()))
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Format:  ext,
			Content: string(content),
		}
	}
	return nil
}

// Names returns the available topic names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Show renders one topic by name.
func (m *Manager) Show(name string) (string, bool) {
	topic, ok := m.topics[name]
	if !ok {
		return "", false
	}
	return m.renderer.Render(topic.Content, topic.Format), true
}

// Attach adds the "topics" command to root.
func (m *Manager) Attach(root *cobra.Command) error {
	if err := m.scan(); err != nil {
		return err
	}

	cmd := &cobra.Command{
		Use:   "topics [topic]",
		Short: "Show long-form documentation topics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				names := m.Names()
				if len(names) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No topics available")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
				for _, name := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
				return nil
			}

			rendered, ok := m.Show(args[0])
			if !ok {
				return fmt.Errorf("unknown topic %q, run \"topics\" for the list", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
	root.AddCommand(cmd)
	return nil
}
