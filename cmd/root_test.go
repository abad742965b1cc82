package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/charchat/internal/catalog"
	"github.com/zhubert/charchat/internal/config"
	"github.com/zhubert/charchat/internal/logger"
)

func TestDebugFlagDefaultFalse(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "false")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", flag.DefValue, "false")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestLogFileFlagDefault(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("log-file")
	if flag == nil {
		t.Fatal("--log-file flag not found")
	}
	if flag.DefValue != logger.DefaultLogPath {
		t.Errorf("--log-file default = %q, want %q", flag.DefValue, logger.DefaultLogPath)
	}
}

func TestRunFlagsExist(t *testing.T) {
	for _, name := range []string{"theme", "user"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
	if rootCmd.PersistentFlags().Lookup("catalog") == nil {
		t.Error("--catalog flag not found")
	}
}

func TestInitConfig_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	origPath := logFilePath
	defer func() { logFilePath = origPath }()
	logger.Reset()
	defer logger.Reset()

	debugMode = true
	quietMode = true
	logFilePath = filepath.Join(t.TempDir(), "charchat.log")

	initConfig()

	logger.Debug("hidden detail")
	logger.Info("visible event")

	data, err := os.ReadFile(logFilePath)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if strings.Contains(string(data), "hidden detail") {
		t.Error("debug line written although --quiet should win")
	}
	if !strings.Contains(string(data), "visible event") {
		t.Error("info line missing from log file")
	}
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	tests := []struct {
		name   string
		commit string
		want   string
	}{
		{"release", "abc123", "charchat 1.2.3\n  commit: abc123\n  built:  today\n"},
		{"dev", "none", "charchat 1.2.3\n"},
		{"empty commit", "", "charchat 1.2.3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersionInfo("1.2.3", tt.commit, "today")
			if got := versionTemplate(); got != tt.want {
				t.Errorf("versionTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	origTheme, origUser := themeFlag, userFlag
	defer func() { themeFlag, userFlag = origTheme, origUser }()

	t.Run("valid", func(t *testing.T) {
		cfg := &config.Config{UserName: "Chad", Theme: "midnight"}
		themeFlag, userFlag = "nord", "Sam"
		if err := applyOverrides(cfg); err != nil {
			t.Fatalf("applyOverrides: %v", err)
		}
		if cfg.GetTheme() != "nord" || cfg.GetUserName() != "Sam" {
			t.Errorf("config = %s/%s, want nord/Sam", cfg.GetTheme(), cfg.GetUserName())
		}
	})

	t.Run("unknown theme", func(t *testing.T) {
		cfg := &config.Config{UserName: "Chad", Theme: "midnight"}
		themeFlag, userFlag = "neon", ""
		if err := applyOverrides(cfg); err == nil {
			t.Error("expected error for unknown theme")
		}
		if cfg.GetTheme() != "midnight" {
			t.Errorf("theme changed to %q on error", cfg.GetTheme())
		}
	})

	t.Run("no flags", func(t *testing.T) {
		cfg := &config.Config{UserName: "Chad", Theme: "midnight"}
		themeFlag, userFlag = "", ""
		if err := applyOverrides(cfg); err != nil {
			t.Fatalf("applyOverrides: %v", err)
		}
		if cfg.GetTheme() != "midnight" || cfg.GetUserName() != "Chad" {
			t.Errorf("config changed without flags")
		}
	})
}

func TestPrintCatalog(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}

	var buf bytes.Buffer
	if err := printCatalog(&buf, cat); err != nil {
		t.Fatalf("printCatalog: %v", err)
	}
	out := buf.String()
	for _, c := range cat.Characters {
		if !strings.Contains(out, c.Name) {
			t.Errorf("output missing %q", c.Name)
		}
	}
	if !strings.Contains(out, "6 history messages") {
		t.Errorf("output missing history summary:\n%s", out)
	}
}

func TestLoadCatalog_BadPath(t *testing.T) {
	orig := catalogPath
	defer func() { catalogPath = orig }()

	catalogPath = "/nonexistent/catalog.yaml"
	if _, err := loadCatalog(); err == nil {
		t.Error("expected error for missing catalog file")
	}
}
