// Package main provides the CLI entrypoint for cryptopals.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Yug-Shah/cryptoPals/internal/breaker"
	"github.com/Yug-Shah/cryptoPals/internal/codec"
	"github.com/Yug-Shah/cryptoPals/internal/config"
	"github.com/Yug-Shah/cryptoPals/internal/ecb"
	"github.com/Yug-Shah/cryptoPals/internal/english"
	"github.com/Yug-Shah/cryptoPals/internal/keygen"
	"github.com/Yug-Shah/cryptoPals/internal/model"
	"github.com/Yug-Shah/cryptoPals/internal/report"
	"github.com/Yug-Shah/cryptoPals/internal/store"
	"github.com/Yug-Shah/cryptoPals/internal/tui"
	"github.com/Yug-Shah/cryptoPals/internal/xor"
)

const (
	defaultTry       = 1
	defaultDetectTop = 5
	defaultBlockSize = 16
	defaultECBKey    = "YELLOW SUBMARINE"
	previewLimit     = 80
)

var (
	breakHex        bool
	breakMin        int
	breakMax        int
	breakKeySize    int
	breakTry        int
	breakCandidates bool
	breakNoSave     bool
	breakTable      string

	detectTop int

	encryptKey        string
	encryptRandomSize int

	scoreTable string

	detectECBBlock int

	decryptECBKey  string
	decryptECBKeep bool

	padBlock int

	calibrateName  string
	calibrateWrite bool

	historySource  string
	historySince   string
	historyLast    int
	historySummary bool

	inspectHex   bool
	inspectMin   int
	inspectMax   int
	inspectTable string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cryptopals",
		Short:         "XOR cryptanalysis toolkit",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newBreakCmd())
	rootCmd.AddCommand(newSingleCmd())
	rootCmd.AddCommand(newDetectCmd())
	rootCmd.AddCommand(newEncryptCmd())
	rootCmd.AddCommand(newXORCmd())
	rootCmd.AddCommand(newDistanceCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newDetectECBCmd())
	rootCmd.AddCommand(newDecryptECBCmd())
	rootCmd.AddCommand(newPadCmd())
	rootCmd.AddCommand(newCalibrateCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newBreakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "break [file]",
		Short: "Recover a repeating XOR key from ciphertext",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBreakCmd,
	}
	cmd.Flags().BoolVar(&breakHex, "hex", false, "read ciphertext as hex instead of base64")
	cmd.Flags().IntVar(&breakMin, "min", breaker.MinKeySize, "smallest key size to try")
	cmd.Flags().IntVar(&breakMax, "max", breaker.MaxKeySize, "largest key size to try")
	cmd.Flags().IntVar(&breakKeySize, "keysize", 0, "break with an exact key size (skip estimation)")
	cmd.Flags().IntVar(&breakTry, "try", defaultTry, "break the top N key size candidates")
	cmd.Flags().BoolVar(&breakCandidates, "candidates", false, "print the key size ranking")
	cmd.Flags().BoolVar(&breakNoSave, "no-save", false, "do not record the run in history")
	cmd.Flags().StringVar(&breakTable, "table", "", "path to a calibrated frequency table")
	return cmd
}

func runBreakCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "min", &breakMin, fileCfg.Breaker.MinKeySize)
	applyIntConfig(cmd, "max", &breakMax, fileCfg.Breaker.MaxKeySize)
	applyIntConfig(cmd, "try", &breakTry, fileCfg.Breaker.Try)
	applyStringConfig(cmd, "table", &breakTable, fileCfg.Scoring.Table)
	if !cmd.Flags().Changed("no-save") && fileCfg.Breaker.Save != nil {
		breakNoSave = !*fileCfg.Breaker.Save
	}

	cfg := model.BreakConfig{
		MinKeySize: breakMin,
		MaxKeySize: breakMax,
		Try:        breakTry,
		KeySize:    breakKeySize,
		TablePath:  breakTable,
	}
	if err := validateBreakConfig(cfg); err != nil {
		return err
	}

	ciphertext, source, err := readCiphertext(args, breakHex)
	if err != nil {
		return err
	}
	b, err := newBreaker(cfg.TablePath)
	if err != nil {
		return err
	}

	startedAt := time.Now()
	candidates, err := b.KeySizes(ciphertext, cfg.MinKeySize, cfg.MaxKeySize)
	if err != nil {
		return fmt.Errorf("failed to rank key sizes: %w", err)
	}
	recovery, err := breakBest(b, cfg, candidates, ciphertext)
	if err != nil {
		return err
	}
	endedAt := time.Now()

	out := cmd.OutOrStdout()
	if breakCandidates {
		if err := report.RenderKeySizes(out, candidates, 0); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if _, err := fmt.Fprintln(out, ""); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := report.RenderDistanceProfile(out, candidates); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if _, err := fmt.Fprintln(out, ""); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := report.RenderRecovery(out, recovery); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	text, err := recovery.Text()
	if err != nil {
		logErrf("warning: %v; substituting non-text bytes\n", err)
		text = strings.ToValidUTF8(string(recovery.Plaintext), "�")
	}
	if _, err := fmt.Fprintf(out, "\n%s\n", text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !breakNoSave {
		saveRun(model.RunRecord{
			StartedAt:  startedAt,
			EndedAt:    endedAt,
			Source:     source,
			InputBytes: len(ciphertext),
			KeySize:    len(recovery.Key),
			KeyHex:     codec.EncodeHex(recovery.Key),
			Score:      recovery.Score,
			Preview:    previewText(recovery.Plaintext),
			DurationMs: endedAt.Sub(startedAt).Milliseconds(),
		}, candidates)
	}
	return nil
}

// breakBest recovers the key, either with the forced size or by breaking
// the top ranked candidates and keeping the best scoring recovery.
func breakBest(b *breaker.Breaker, cfg model.BreakConfig, candidates []model.KeySizeCandidate, ciphertext []byte) (model.Recovery, error) {
	if cfg.KeySize > 0 {
		return b.RepeatingKey(cfg.KeySize, ciphertext)
	}
	if len(candidates) == 0 {
		return model.Recovery{}, fmt.Errorf("failed to rank key sizes for %d bytes: %w", len(ciphertext), breaker.ErrInsufficientData)
	}
	try := cfg.Try
	if try > len(candidates) {
		try = len(candidates)
	}
	var best model.Recovery
	for i := 0; i < try; i++ {
		rec, err := b.RepeatingKey(candidates[i].KeySize, ciphertext)
		if err != nil {
			return model.Recovery{}, err
		}
		if i == 0 || rec.Score > best.Score {
			best = rec
		}
	}
	return best, nil
}

func newSingleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "single <hex|file>",
		Short: "Break single-byte XOR",
		Args:  cobra.ExactArgs(1),
		RunE:  runSingleCmd,
	}
}

func runSingleCmd(cmd *cobra.Command, args []string) error {
	ciphertext, err := readHexArg(args[0])
	if err != nil {
		return err
	}
	cand := breaker.New().SingleByte(ciphertext)
	out := cmd.OutOrStdout()
	if err := report.RenderCandidate(out, cand); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintf(out, "\n%s\n", cand.Text()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Find the single-byte XOR line in a hex file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDetectCmd,
	}
	cmd.Flags().IntVar(&detectTop, "top", defaultDetectTop, "show the N best lines")
	return cmd
}

func runDetectCmd(cmd *cobra.Command, args []string) error {
	lines, err := readHexLines(args)
	if err != nil {
		return err
	}
	hits := breaker.New().DetectSingleByte(lines)
	if err := report.RenderHits(cmd.OutOrStdout(), hits, detectTop); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newEncryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt [file]",
		Short: "Encrypt with repeating-key XOR",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEncryptCmd,
	}
	cmd.Flags().StringVar(&encryptKey, "key", "", "key text")
	cmd.Flags().IntVar(&encryptRandomSize, "random-keysize", 0, "generate a random printable key of this size")
	return cmd
}

func runEncryptCmd(cmd *cobra.Command, args []string) error {
	if encryptRandomSize < 0 {
		return fmt.Errorf("--random-keysize must be >= 0")
	}
	if (encryptKey == "") == (encryptRandomSize == 0) {
		return fmt.Errorf("use exactly one of --key or --random-keysize")
	}
	key := []byte(encryptKey)
	if encryptRandomSize > 0 {
		key = keygen.New().PrintableKey(encryptRandomSize)
		logErrf("key: %s\n", key)
	}
	plaintext, err := readRaw(args)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeHex(xor.Repeating(key, plaintext))); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newXORCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xor <hex> <hex>",
		Short: "XOR two equal-length hex buffers",
		Args:  cobra.ExactArgs(2),
		RunE:  runXORCmd,
	}
}

func runXORCmd(cmd *cobra.Command, args []string) error {
	a, err := codec.DecodeHex(args[0])
	if err != nil {
		return err
	}
	b, err := codec.DecodeHex(args[1])
	if err != nil {
		return err
	}
	combined, err := xor.Fixed(a, b)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeHex(combined)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <a> <b>",
		Short: "Hamming distance of two strings",
		Args:  cobra.ExactArgs(2),
		RunE:  runDistanceCmd,
	}
}

func runDistanceCmd(cmd *cobra.Command, args []string) error {
	d, err := xor.HammingDistance([]byte(args[0]), []byte(args[1]))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), d); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [text]",
		Short: "Score text against the English frequency table",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScoreCmd,
	}
	cmd.Flags().StringVar(&scoreTable, "table", "", "path to a calibrated frequency table")
	return cmd
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "table", &scoreTable, fileCfg.Scoring.Table)

	table, err := scoringTable(scoreTable)
	if err != nil {
		return err
	}
	var text []byte
	if len(args) > 0 {
		text = []byte(args[0])
	} else {
		text, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", table.ScoreBytes(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newDetectECBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect-ecb [file]",
		Short: "Flag hex lines with repeated cipher blocks",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDetectECBCmd,
	}
	cmd.Flags().IntVar(&detectECBBlock, "block", defaultBlockSize, "cipher block size in bytes")
	return cmd
}

func runDetectECBCmd(cmd *cobra.Command, args []string) error {
	if detectECBBlock < 1 {
		return fmt.Errorf("--block must be >= 1")
	}
	lines, err := readHexLines(args)
	if err != nil {
		return err
	}
	suspects := ecb.Detect(lines, detectECBBlock)
	out := cmd.OutOrStdout()
	if len(suspects) == 0 {
		if _, err := fmt.Fprintln(out, "No ECB suspects found."); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	for _, s := range suspects {
		if _, err := fmt.Fprintf(out, "Line %d: %d duplicate blocks\n", s.Line+1, s.Duplicates); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newDecryptECBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt-ecb [file]",
		Short: "Decrypt AES-128-ECB ciphertext",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDecryptECBCmd,
	}
	cmd.Flags().StringVar(&decryptECBKey, "key", defaultECBKey, "AES key text (16 bytes)")
	cmd.Flags().BoolVar(&decryptECBKeep, "keep-padding", false, "keep the trailing PKCS#7 padding")
	return cmd
}

func runDecryptECBCmd(cmd *cobra.Command, args []string) error {
	ciphertext, _, err := readCiphertext(args, false)
	if err != nil {
		return err
	}
	var plaintext []byte
	if decryptECBKeep {
		plaintext, err = ecb.DecryptBlocks([]byte(decryptECBKey), ciphertext)
	} else {
		plaintext, err = ecb.Decrypt([]byte(decryptECBKey), ciphertext)
	}
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(plaintext); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newPadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pad <text>",
		Short: "Apply PKCS#7 padding",
		Args:  cobra.ExactArgs(1),
		RunE:  runPadCmd,
	}
	cmd.Flags().IntVar(&padBlock, "block", defaultBlockSize, "block size in bytes")
	return cmd
}

func runPadCmd(cmd *cobra.Command, args []string) error {
	padded, err := ecb.Pad([]byte(args[0]), padBlock)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%q\n", padded); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newCalibrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibrate <corpus>",
		Short: "Derive a frequency table from sample text",
		Args:  cobra.ExactArgs(1),
		RunE:  runCalibrateCmd,
	}
	cmd.Flags().StringVar(&calibrateName, "name", "custom", "table name for --write")
	cmd.Flags().BoolVar(&calibrateWrite, "write", false, "write the table into the config directory")
	return cmd
}

func runCalibrateCmd(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	table, err := english.TableFromCorpus(file)
	if err != nil {
		return fmt.Errorf("failed to calibrate from %s: %w", args[0], err)
	}

	if !calibrateWrite {
		if err := english.WriteTable(cmd.OutOrStdout(), table); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if strings.TrimSpace(calibrateName) == "" {
		return fmt.Errorf("--name must not be empty")
	}
	outPath := config.DefaultTablePath(calibrateName)
	if err := writeTableFile(outPath, table); err != nil {
		return err
	}
	logErrf("Wrote %s\n", outPath)
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stored breaking runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySource, "source", "", "source filter")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N runs")
	cmd.Flags().BoolVar(&historySummary, "summary", false, "print aggregate stats instead of the table")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	cfg := model.HistoryConfig{
		Source: historySource,
		Since:  sinceTime,
		Last:   historyLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	rep, err := report.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	out := cmd.OutOrStdout()
	if historySummary {
		if err := report.RenderSummary(out, rep.Runs); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := report.RenderRuns(out, rep.Runs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Browse key size candidates interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspectCmd,
	}
	cmd.Flags().BoolVar(&inspectHex, "hex", false, "read ciphertext as hex instead of base64")
	cmd.Flags().IntVar(&inspectMin, "min", breaker.MinKeySize, "smallest key size to try")
	cmd.Flags().IntVar(&inspectMax, "max", breaker.MaxKeySize, "largest key size to try")
	cmd.Flags().StringVar(&inspectTable, "table", "", "path to a calibrated frequency table")
	return cmd
}

func runInspectCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "min", &inspectMin, fileCfg.Breaker.MinKeySize)
	applyIntConfig(cmd, "max", &inspectMax, fileCfg.Breaker.MaxKeySize)
	applyStringConfig(cmd, "table", &inspectTable, fileCfg.Scoring.Table)

	cfg := model.BreakConfig{
		MinKeySize: inspectMin,
		MaxKeySize: inspectMax,
		Try:        defaultTry,
		TablePath:  inspectTable,
	}
	if err := validateBreakConfig(cfg); err != nil {
		return err
	}

	ciphertext, source, err := readCiphertext(args, inspectHex)
	if err != nil {
		return err
	}
	b, err := newBreaker(cfg.TablePath)
	if err != nil {
		return err
	}
	m, err := tui.NewModel(b, cfg, source, ciphertext)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run inspector: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func readCiphertext(args []string, hexInput bool) ([]byte, string, error) {
	if len(args) > 0 {
		path := args[0]
		var (
			data []byte
			err  error
		)
		if hexInput {
			data, err = codec.ReadHexFile(path)
		} else {
			data, err = codec.ReadBase64File(path)
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return data, filepath.Base(path), nil
	}
	var (
		data []byte
		err  error
	)
	if hexInput {
		data, err = codec.ReadHex(os.Stdin)
	} else {
		data, err = codec.ReadBase64(os.Stdin)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, "stdin", nil
}

func readHexArg(arg string) ([]byte, error) {
	if _, err := os.Stat(arg); err == nil {
		data, err := codec.ReadHexFile(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", arg, err)
		}
		return data, nil
	}
	return codec.DecodeHex(arg)
}

func readHexLines(args []string) ([][]byte, error) {
	if len(args) > 0 {
		lines, err := codec.ReadHexLinesFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return lines, nil
	}
	lines, err := codec.ReadHexLines(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return lines, nil
}

func readRaw(args []string) ([]byte, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func scoringTable(tablePath string) (english.Table, error) {
	if tablePath == "" {
		return english.DefaultTable, nil
	}
	table, err := english.LoadTable(tablePath)
	if err != nil {
		return english.Table{}, fmt.Errorf("failed to load scoring table: %w", err)
	}
	return table, nil
}

func newBreaker(tablePath string) (*breaker.Breaker, error) {
	table, err := scoringTable(tablePath)
	if err != nil {
		return nil, err
	}
	return breaker.NewWithTable(table), nil
}

func saveRun(rec model.RunRecord, candidates []model.KeySizeCandidate) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if _, err := st.InsertRun(context.Background(), rec, candidates); err != nil {
		logErrf("failed to save run: %v\n", err)
	}
}

func previewText(buf []byte) string {
	if len(buf) > previewLimit {
		buf = buf[:previewLimit]
	}
	return report.PrintableKey(buf)
}

func writeTableFile(path string, table english.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create table dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "table-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp table: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := english.WriteTable(tmpFile, table); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close table: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# cryptopals configuration
# Uncomment a value to enable it. CLI flags override config values.

[breaker]
# min-keysize = %d         # Smallest key size to try
# max-keysize = %d        # Largest key size to try
# try = %d                 # Break the top N key size candidates
# save = true             # Record breaking runs in the history db

[scoring]
# table = ""              # Path to a calibrated frequency table
`,
		breaker.MinKeySize,
		breaker.MaxKeySize,
		defaultTry,
	)
}

func validateBreakConfig(cfg model.BreakConfig) error {
	if cfg.MinKeySize < 1 {
		return fmt.Errorf("--min must be >= 1")
	}
	if cfg.MaxKeySize < cfg.MinKeySize {
		return fmt.Errorf("--max must be >= --min")
	}
	if cfg.Try < 1 {
		return fmt.Errorf("--try must be >= 1")
	}
	if cfg.KeySize < 0 {
		return fmt.Errorf("--keysize must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
