package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type TypeChecker struct {
	Name string `yaml:"name"`
}

type TestGroup struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

type TestCase struct {
	Name string
}

func LoadGroups(path string) ([]TestGroup, error) {
	var groups []TestGroup
	if err := decodeStrictYAML(path, &groups); err != nil {
		return nil, err
	}
	if errs := validateGroups(groups); len(errs) > 0 {
		return nil, fmt.Errorf("invalid test group catalog %s: %s", path, strings.Join(errs, "; "))
	}
	return groups, nil
}

func LoadCheckers(path string) ([]TypeChecker, error) {
	var checkers []TypeChecker
	if err := decodeStrictYAML(path, &checkers); err != nil {
		return nil, err
	}
	if errs := validateCheckers(checkers); len(errs) > 0 {
		return nil, fmt.Errorf("invalid type checker registry %s: %s", path, strings.Join(errs, "; "))
	}
	return checkers, nil
}

// DiscoverCases lists the test case stems under testsDir. Hidden entries and
// subdirectories are ignored; two files sharing a stem yield one case.
func DiscoverCases(testsDir string) ([]TestCase, error) {
	entries, err := os.ReadDir(testsDir)
	if err != nil {
		return nil, fmt.Errorf("list test cases: %w", err)
	}
	seen := map[string]bool{}
	out := make([]TestCase, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if stem == "" || seen[stem] {
			continue
		}
		seen[stem] = true
		out = append(out, TestCase{Name: stem})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GroupMembers classifies cases into group: a case belongs to the group whose
// name is a prefix of the case name followed by "_". Members are returned
// sorted by name.
func GroupMembers(group TestGroup, cases []TestCase) []TestCase {
	prefix := group.Name + "_"
	members := make([]TestCase, 0, len(cases))
	for _, c := range cases {
		if strings.HasPrefix(c.Name, prefix) {
			members = append(members, c)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members
}

func decodeStrictYAML(path string, out interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("parse catalog %s: file is empty", path)
		}
		return fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return nil
}

func validateGroups(groups []TestGroup) []string {
	var errs []string
	seen := map[string]bool{}
	for _, g := range groups {
		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, "group name cannot be empty")
			continue
		}
		if strings.TrimSpace(g.Href) == "" {
			errs = append(errs, "group "+g.Name+" is missing href")
		}
		if seen[g.Name] {
			errs = append(errs, "duplicate group name "+g.Name)
		}
		seen[g.Name] = true
	}
	sort.Strings(errs)
	return errs
}

func validateCheckers(checkers []TypeChecker) []string {
	var errs []string
	if len(checkers) == 0 {
		return []string{"registry cannot be empty"}
	}
	seen := map[string]bool{}
	for _, tc := range checkers {
		if strings.TrimSpace(tc.Name) == "" {
			errs = append(errs, "type checker name cannot be empty")
			continue
		}
		if seen[tc.Name] {
			errs = append(errs, "duplicate type checker name "+tc.Name)
		}
		seen[tc.Name] = true
	}
	sort.Strings(errs)
	return errs
}
