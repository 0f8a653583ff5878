//go:build mage

package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/mkfoss/relink/internal/styles"
)

// Info displays the available mage commands and their descriptions
func Info() {
	fmt.Println(styles.Header("Mage build script for relink"))
	fmt.Println()
	fmt.Println(styles.Info("Available commands:"))
	fmt.Println()
	fmt.Println(styles.Info("🧪 Quality Commands:"))
	fmt.Println(styles.Example("ci", "Run full CI pipeline (format, test, lint)"))
	fmt.Println(styles.Example("test", "Run all tests"))
	fmt.Println(styles.Example("testcgo", "Run all tests against the CGO backend"))
	fmt.Println(styles.Example("lint", "Run golangci-lint on project code"))
	fmt.Println(styles.Example("format", "Format Go code using gofmt"))
	fmt.Println()
	fmt.Println(styles.Info("📦 Build Commands:"))
	fmt.Println(styles.Example("buildshared", "Build librelink as a C shared library + header"))
	fmt.Println()
	fmt.Println(styles.Info("📋 Version & Release:"))
	fmt.Println(styles.Example("version", "Display current version from VERSION file"))
	fmt.Println(styles.Example("release", "Create and push annotated release tag"))
	fmt.Println()
	fmt.Printf("%s %s\n", styles.Info("Usage:"), "mage <command>")
	fmt.Println(styles.Dim("Examples:"))
	fmt.Printf("%s %s\n", styles.Dim("  Run CI pipeline:"), styles.Code("mage ci"))
	fmt.Printf("%s %s\n", styles.Dim("  Build the shared library:"), styles.Code("mage buildshared"))
	fmt.Println()
	fmt.Println(styles.Success("Ready to go!"))
}

// CI runs the full CI pipeline: format, test, lint
func CI() error {
	fmt.Println(styles.Header("🚀 Running CI pipeline..."))
	fmt.Println()

	if err := Format(); err != nil {
		return err
	}
	fmt.Println()

	if err := Test(); err != nil {
		return err
	}
	fmt.Println()

	if err := Lint(); err != nil {
		return err
	}
	fmt.Println()

	fmt.Println(styles.Success("🎉 CI pipeline completed successfully!"))
	return nil
}

// Test runs all tests against the pure Go backend
func Test() error {
	fmt.Println(styles.Info("Running tests..."))

	if err := sh.RunV("go", "test", "./...", "-count=1"); err != nil {
		return fmt.Errorf("%s tests failed: %v", styles.Error("Error:"), err)
	}

	fmt.Println(styles.Success("✓ All tests passed"))
	return nil
}

// TestCGO runs all tests against the CGO (librl4) backend
func TestCGO() error {
	fmt.Println(styles.Info("Running tests (CGO backend)..."))

	if err := sh.RunV("go", "test", "-tags", "relinkcgo", "./...", "-count=1"); err != nil {
		return fmt.Errorf("%s tests failed: %v", styles.Error("Error:"), err)
	}

	fmt.Println(styles.Success("✓ All tests passed"))
	return nil
}

// Lint runs golangci-lint on the project (excludes magefiles)
func Lint() error {
	fmt.Println(styles.Info("Running golangci-lint..."))

	if err := sh.RunV("golangci-lint", "run"); err != nil {
		return fmt.Errorf("%s linting failed: %v", styles.Error("Error:"), err)
	}

	fmt.Println(styles.Success("✓ Linting completed successfully"))
	return nil
}

// Format runs gofmt on all Go files in the project
func Format() error {
	fmt.Println(styles.Info("Formatting Go code with gofmt..."))

	if err := sh.RunV("gofmt", "-s", "-w", "."); err != nil {
		return fmt.Errorf("%s formatting failed: %v", styles.Error("Error:"), err)
	}

	fmt.Println(styles.Success("✓ Code formatting completed successfully"))
	return nil
}

// BuildShared builds librelink as a C shared library with a generated header
func BuildShared() error {
	fmt.Println(styles.Header("📦 Building librelink (c-shared)..."))

	if err := os.MkdirAll("dist", 0755); err != nil {
		return fmt.Errorf("%s failed to create dist directory: %w", styles.Error("Error:"), err)
	}

	if err := sh.RunV("go", "build", "-buildmode=c-shared",
		"-o", "dist/librelink.so", "./cmd/librelink"); err != nil {
		return fmt.Errorf("%s c-shared build failed: %v", styles.Error("Error:"), err)
	}

	fmt.Println(styles.Success("✓ Shared library built"))
	fmt.Println(styles.Artifact("library", "dist/librelink.so"))
	fmt.Println(styles.Artifact("header", "dist/librelink.h"))
	return nil
}

// GetVersion reads the version from the VERSION file
func GetVersion() (string, error) {
	data, err := os.ReadFile("VERSION")
	if err != nil {
		return "", fmt.Errorf("failed to read VERSION file: %w", err)
	}

	version := strings.TrimSpace(string(data))
	if version == "" {
		return "", fmt.Errorf("VERSION file is empty")
	}

	if matched, _ := regexp.MatchString(`^v?\d+\.\d+\.\d+(-[a-zA-Z0-9]+)?$`, version); !matched {
		return "", fmt.Errorf("invalid version format: %s (expected format: x.y.z or vx.y.z)", version)
	}

	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	return version, nil
}

// Version displays the current version
func Version() error {
	version, err := GetVersion()
	if err != nil {
		return err
	}

	fmt.Printf("%s Current version: %s\n", styles.Info("📋"), styles.Success(version))
	return nil
}

// CheckGitStatus ensures the git repository is in a clean state
func CheckGitStatus() error {
	output, err := sh.Output("git", "status", "--porcelain")
	if err != nil {
		return fmt.Errorf("failed to check git status: %w", err)
	}

	if strings.TrimSpace(output) != "" {
		return fmt.Errorf("%s repository has uncommitted changes. Commit or stash changes before releasing", styles.Error("Error:"))
	}

	return nil
}

// CheckVersionBump ensures the version has been bumped since the last tag
func CheckVersionBump(version string) error {
	latestTag, err := sh.Output("git", "describe", "--tags", "--abbrev=0")
	if err != nil {
		fmt.Println(styles.Info("📋 No existing tags found - this will be the first release"))
		return nil
	}

	latestTag = strings.TrimSpace(latestTag)

	if latestTag == version {
		return fmt.Errorf("%s version %s already exists as a git tag. Please bump the version in the VERSION file", styles.Error("Error:"), version)
	}

	fmt.Printf("%s Version bump detected: %s → %s\n", styles.Info("📋"), styles.Dim(latestTag), styles.Success(version))
	return nil
}

// Release creates and pushes a new release tag
func Release() error {
	fmt.Println(styles.Header("🚀 Creating release..."))
	fmt.Println()

	version, err := GetVersion()
	if err != nil {
		return err
	}

	mg.SerialDeps(CheckGitStatus, CI)

	if err := CheckVersionBump(version); err != nil {
		return err
	}

	fmt.Printf("%s Creating annotated tag %s...\n", styles.Info("🏷️"), styles.Success(version))
	if err := sh.Run("git", "tag", "-a", version, "-m", fmt.Sprintf("Release %s", version)); err != nil {
		return fmt.Errorf("%s failed to create tag: %w", styles.Error("Error:"), err)
	}

	fmt.Printf("%s Pushing tag %s...\n", styles.Info("📤"), styles.Success(version))
	if err := sh.Run("git", "push", "origin", version); err != nil {
		return fmt.Errorf("%s failed to push tag: %w", styles.Error("Error:"), err)
	}

	fmt.Printf("%s Release %s created and pushed successfully!\n", styles.Success("✅"), styles.Success(version))
	return nil
}

// Default target to run when no target is specified
var Default = Info
