package swarm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// verifyStepTimeout bounds each verification command.
const verifyStepTimeout = 5 * time.Minute

// StepResult is the outcome of one verification step. Skipped steps count
// as passing; the gate fails only on a step that ran and failed.
type StepResult struct {
	Name       string `json:"name"`
	Passed     bool   `json:"passed"`
	Skipped    bool   `json:"skipped"`
	SkipReason string `json:"skip_reason,omitempty"`
	Command    string `json:"command,omitempty"`
	ExitCode   int    `json:"exit_code"`
	Output     string `json:"output,omitempty"`
}

// VerifyResult aggregates the steps of one verification run.
type VerifyResult struct {
	Passed   bool         `json:"passed"`
	Steps    []StepResult `json:"steps"`
	Blockers []string     `json:"blockers,omitempty"`
}

// Verifier checks a worker's output before it enters review.
type Verifier interface {
	Verify(ctx context.Context, files []string) (*VerifyResult, error)
}

// CommandVerifier runs a typecheck when a type configuration is present,
// then discovered tests for each touched file. Missing configuration,
// missing tests, and unavailable tools all skip rather than fail.
type CommandVerifier struct {
	Root   string
	logger *slog.Logger
}

// NewCommandVerifier creates a verifier rooted at the working tree.
func NewCommandVerifier(root string, logger *slog.Logger) *CommandVerifier {
	return &CommandVerifier{Root: root, logger: logger.With("component", "verify")}
}

// Verify implements Verifier.
func (v *CommandVerifier) Verify(ctx context.Context, files []string) (*VerifyResult, error) {
	result := &VerifyResult{Passed: true}

	result.Steps = append(result.Steps, v.typecheck(ctx))
	for _, f := range files {
		result.Steps = append(result.Steps, v.testFile(ctx, f))
	}

	for _, step := range result.Steps {
		if step.Skipped || step.Passed {
			continue
		}
		result.Passed = false
		result.Blockers = append(result.Blockers, fmt.Sprintf(
			"%s failed (exit %d): run `%s` locally and fix the reported errors before resubmitting",
			step.Name, step.ExitCode, step.Command))
	}
	return result, nil
}

func (v *CommandVerifier) typecheck(ctx context.Context) StepResult {
	switch {
	case v.exists("tsconfig.json"):
		return v.runStep(ctx, "typecheck", "npx", "tsc", "--noEmit")
	case v.exists("go.mod"):
		return v.runStep(ctx, "typecheck", "go", "vet", "./...")
	case v.exists("pyproject.toml"), v.exists("mypy.ini"):
		return v.runStep(ctx, "typecheck", "mypy", ".")
	}
	return StepResult{Name: "typecheck", Passed: true, Skipped: true, SkipReason: "no type configuration found"}
}

func (v *CommandVerifier) testFile(ctx context.Context, file string) StepResult {
	name := "test " + file
	test, runner := v.discoverTest(file)
	if test == "" {
		return StepResult{Name: name, Passed: true, Skipped: true, SkipReason: "no tests found for " + file}
	}
	return v.runStep(ctx, name, runner[0], append(runner[1:], test)...)
}

// discoverTest maps a touched file to its test counterpart and runner.
func (v *CommandVerifier) discoverTest(file string) (string, []string) {
	dir := filepath.Dir(file)
	base := filepath.Base(file)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	switch ext {
	case ".go":
		if strings.HasSuffix(stem, "_test") {
			return file, []string{"go", "test"}
		}
		candidate := filepath.Join(dir, stem+"_test.go")
		if v.exists(candidate) {
			return "./" + dir, []string{"go", "test"}
		}
	case ".ts", ".tsx", ".js", ".jsx":
		for _, suffix := range []string{".test", ".spec"} {
			candidate := filepath.Join(dir, stem+suffix+ext)
			if v.exists(candidate) {
				return candidate, []string{"npx", "vitest", "run"}
			}
		}
	case ".py":
		candidate := filepath.Join(dir, "test_"+base)
		if v.exists(candidate) {
			return candidate, []string{"pytest", "-q"}
		}
	}
	return "", nil
}

func (v *CommandVerifier) runStep(ctx context.Context, name, bin string, args ...string) StepResult {
	ctx, cancel := context.WithTimeout(ctx, verifyStepTimeout)
	defer cancel()

	cmdline := bin + " " + strings.Join(args, " ")
	step := StepResult{Name: name, Command: cmdline}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = v.Root
	out, err := cmd.CombinedOutput()
	step.Output = truncateOutput(string(out))

	if err == nil {
		step.Passed = true
		return step
	}
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		step.ExitCode = exitErr.ExitCode()
	case errors.Is(err, exec.ErrNotFound):
		step.Passed = true
		step.Skipped = true
		step.SkipReason = bin + " not available"
	case ctx.Err() != nil:
		step.ExitCode = -1
		step.Output = "verification step timed out\n" + step.Output
	default:
		step.ExitCode = -1
		step.Output = err.Error()
	}
	v.logger.Debug("verify step finished", "step", name, "passed", step.Passed, "skipped", step.Skipped)
	return step
}

func (v *CommandVerifier) exists(rel string) bool {
	_, err := os.Stat(filepath.Join(v.Root, rel))
	return err == nil
}

// truncateOutput keeps step output small enough to embed in events.
func truncateOutput(s string) string {
	const max = 4096
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n... (truncated)"
}
