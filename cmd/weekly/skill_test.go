// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates skill installation, directory creation, and file content.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withSkipConfirm(t *testing.T, v bool) {
	t.Helper()
	old := skillSkipConfirm
	skillSkipConfirm = v
	t.Cleanup(func() { skillSkipConfirm = old })
}

// TestSkillInstallCreatesDirectory verifies that the full skill path is created
// when none of it exists.
func TestSkillInstallCreatesDirectory(t *testing.T) {
	tmpHome := t.TempDir()
	withSkipConfirm(t, true)

	if _, err := os.Stat(filepath.Join(tmpHome, ".claude")); err == nil {
		t.Fatal(".claude directory should not exist yet")
	}

	var out bytes.Buffer
	if err := installSkill(&out, strings.NewReader(""), tmpHome); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	for _, dir := range []string{
		filepath.Join(tmpHome, ".claude"),
		filepath.Join(tmpHome, ".claude", "skills"),
		filepath.Join(tmpHome, ".claude", "skills", "weekly"),
	} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("Directory %s was not created: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}

	info, err := os.Stat(skillPathIn(tmpHome))
	if err != nil {
		t.Fatalf("Skill file not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected file mode 0600, got %v", info.Mode().Perm())
	}
	if !strings.Contains(out.String(), "Installed weekly skill") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

// TestSkillInstallOverwritesExistingFile verifies that a stale skill file is replaced.
func TestSkillInstallOverwritesExistingFile(t *testing.T) {
	tmpHome := t.TempDir()
	withSkipConfirm(t, true)

	skillPath := skillPathIn(tmpHome)
	if err := os.MkdirAll(filepath.Dir(skillPath), 0755); err != nil {
		t.Fatalf("Failed to create skill directory: %v", err)
	}
	if err := os.WriteFile(skillPath, []byte("# Old Skill\nstale content"), 0644); err != nil {
		t.Fatalf("Failed to write old skill file: %v", err)
	}

	var out bytes.Buffer
	if err := installSkill(&out, strings.NewReader(""), tmpHome); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Error("Expected overwrite notice")
	}

	newData, err := os.ReadFile(skillPath)
	if err != nil {
		t.Fatalf("Failed to read new skill file: %v", err)
	}
	if strings.Contains(string(newData), "stale content") {
		t.Error("Old content should have been replaced")
	}
	if !strings.Contains(string(newData), "name: weekly") {
		t.Error("Expected new content to contain 'name: weekly'")
	}
}

// TestSkillInstallConfirmation verifies the prompt answer decides whether to install.
func TestSkillInstallConfirmation(t *testing.T) {
	withSkipConfirm(t, false)

	tests := []struct {
		answer  string
		install bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.answer), func(t *testing.T) {
			tmpHome := t.TempDir()

			var out bytes.Buffer
			if err := installSkill(&out, strings.NewReader(tt.answer), tmpHome); err != nil {
				t.Fatalf("installSkill failed: %v", err)
			}

			_, err := os.Stat(skillPathIn(tmpHome))
			if installed := err == nil; installed != tt.install {
				t.Errorf("installed = %v, want %v", installed, tt.install)
			}
			if !tt.install && !strings.Contains(out.String(), "Installation canceled.") {
				t.Errorf("expected cancel message, got: %s", out.String())
			}
		})
	}
}

// TestSkillFSReadEmbeddedContent verifies the embedded SKILL.md has frontmatter.
func TestSkillFSReadEmbeddedContent(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill/SKILL.md: %v", err)
	}

	contentStr := string(content)
	if !strings.HasPrefix(contentStr, "---") {
		t.Error("Expected SKILL.md to start with YAML frontmatter (---)")
	}
	if !strings.Contains(contentStr, "name: weekly") {
		t.Error("Expected frontmatter to contain 'name: weekly'")
	}
	if !strings.Contains(contentStr, "description:") {
		t.Error("Expected frontmatter to contain 'description:'")
	}
}

// TestSkillSkipConfirmFlag verifies the flag exists and has correct defaults.
func TestSkillSkipConfirmFlag(t *testing.T) {
	flag := installSkillCmd.Flags().Lookup("yes")
	if flag == nil {
		t.Fatal("Expected --yes flag to be defined")
	}
	if flag.Shorthand != "y" {
		t.Errorf("Expected shorthand 'y', got %q", flag.Shorthand)
	}
	if flag.DefValue != "false" {
		t.Errorf("Expected default value 'false', got %q", flag.DefValue)
	}
}

// TestSkillEmbeddedContentMatchesSource verifies the skill documents every tool and metric.
func TestSkillEmbeddedContentMatchesSource(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}
	contentStr := string(content)

	for _, tool := range []string{
		"mcp__weekly__add_report",
		"mcp__weekly__list_reports",
		"mcp__weekly__get_report",
		"mcp__weekly__update_report",
		"mcp__weekly__delete_report",
		"mcp__weekly__week_bounds",
		"mcp__weekly__compare_weeks",
	} {
		if !strings.Contains(contentStr, tool) {
			t.Errorf("Expected embedded SKILL.md to reference %q", tool)
		}
	}

	for _, metric := range []string{
		"online_requirements",
		"online_req_count",
		"fixed_bugs",
		"bug_fix_rate",
		"release_orders",
		"release_failures",
		"new_reuse_units",
		"new_reuse_events",
	} {
		if !strings.Contains(contentStr, metric) {
			t.Errorf("Expected embedded SKILL.md to document metric %q", metric)
		}
	}

	for _, section := range []string{"## When to use weekly", "## Metrics"} {
		if !strings.Contains(contentStr, section) {
			t.Errorf("Expected embedded SKILL.md to contain %q", section)
		}
	}
}
