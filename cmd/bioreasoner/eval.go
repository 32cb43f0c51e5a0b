package main

import (
	"context"
	"os"

	"github.com/aretw0/bioreasoner/internal/cli"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval-llm <scenario.yaml>",
	Short: "Score an LLM's prediction for one scenario against the engine",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.Flags().GetString("out")

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		exitOnError(cli.RunEval(sigCtx, cli.EvalOptions{
			EngineOptions: engineOptions(cmd),
			ModelOptions:  modelOptions(cmd),
			ScenarioPath:  args[0],
			Out:           out,
		}, os.Stdout))
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch-eval",
	Short: "Evaluate every scenario of a suite and write one result per scenario",
	Run: func(cmd *cobra.Command, args []string) {
		suite, _ := cmd.Flags().GetString("suite")
		outDir, _ := cmd.Flags().GetString("outdir")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		store, _ := cmd.Flags().GetString("store")
		redisURL, _ := cmd.Flags().GetString("redis-url")
		redisPrefix, _ := cmd.Flags().GetString("redis-prefix")
		redisTTL, _ := cmd.Flags().GetDuration("redis-ttl")
		redact, _ := cmd.Flags().GetStringSlice("redact")

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		exitOnError(cli.RunBatch(sigCtx, cli.BatchOptions{
			EngineOptions: engineOptions(cmd),
			ModelOptions:  modelOptions(cmd),
			SuiteDir:      suite,
			OutDir:        outDir,
			Concurrency:   concurrency,
			Store:         store,
			RedisURL:      redisURL,
			RedisPrefix:   redisPrefix,
			RedisTTL:      redisTTL,
			EncryptionKey: encryptionKey(cmd),
			Redact:        redact,
		}, os.Stdout))
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize a directory of evaluation results (micro and macro F1)",
	Run: func(cmd *cobra.Command, args []string) {
		input, _ := cmd.Flags().GetString("input")
		out, _ := cmd.Flags().GetString("out")
		exitOnError(cli.RunAnalyze(context.Background(), cli.AnalyzeOptions{
			Input:         input,
			Out:           out,
			EncryptionKey: encryptionKey(cmd),
		}, os.Stdout))
	},
}

var aggregateCmd = &cobra.Command{
	Use:   "aggregate-replicates",
	Short: "Average the summaries found under a directory tree",
	Run: func(cmd *cobra.Command, args []string) {
		root, _ := cmd.Flags().GetString("root")
		out, _ := cmd.Flags().GetString("out")
		exitOnError(cli.RunAggregate(cli.AggregateOptions{Root: root, Out: out}, os.Stdout))
	},
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().String("provider", "", "Model provider: openai, ollama, gemini or stub (default from BIOREASONER_MODEL_PROVIDER)")
	cmd.Flags().String("model", "", "Model name (default from BIOREASONER_MODEL_NAME)")
	cmd.Flags().Int("replicate", 1, "Replicate index recorded in each result")
	cmd.Flags().String("stub-response", "", "Canned reply of the stub provider")
}

// encryptionKey reads --encryption-key, falling back to BIOREASONER_RESULT_KEY.
func encryptionKey(cmd *cobra.Command) string {
	if key, _ := cmd.Flags().GetString("encryption-key"); key != "" {
		return key
	}
	return os.Getenv("BIOREASONER_RESULT_KEY")
}

func modelOptions(cmd *cobra.Command) cli.ModelOptions {
	provider, _ := cmd.Flags().GetString("provider")
	model, _ := cmd.Flags().GetString("model")
	replicate, _ := cmd.Flags().GetInt("replicate")
	stub, _ := cmd.Flags().GetString("stub-response")
	return cli.ModelOptions{Provider: provider, Model: model, Replicate: replicate, StubResponse: stub}
}

func init() {
	rootCmd.AddCommand(evalCmd, batchCmd, analyzeCmd, aggregateCmd)

	addModelFlags(evalCmd)
	evalCmd.Flags().StringP("out", "o", "-", "Output path ('-' for stdout)")

	addModelFlags(batchCmd)
	batchCmd.Flags().String("suite", "examples/scenarios", "Directory of scenario files")
	batchCmd.Flags().String("outdir", "results", "Directory for per-scenario results (file store)")
	batchCmd.Flags().Int("concurrency", 4, "Scenarios evaluated in parallel")
	batchCmd.Flags().String("store", cli.StoreFile, "Result store: 'file' or 'redis'")
	batchCmd.Flags().String("redis-url", "redis://localhost:6379/0", "Redis URL (redis store)")
	batchCmd.Flags().String("redis-prefix", "", "Key prefix (redis store)")
	batchCmd.Flags().Duration("redis-ttl", 0, "Result expiry, 0 keeps results forever (redis store)")
	batchCmd.Flags().String("encryption-key", "", "AES-256 key (hex or base64) encrypting stored results")
	batchCmd.Flags().StringSlice("redact", nil, "Key patterns masked before storage, e.g. ^raw_llm_output$")

	analyzeCmd.Flags().String("input", "results", "Directory of evaluation results")
	analyzeCmd.Flags().StringP("out", "o", "-", "Output path ('-' for stdout)")
	analyzeCmd.Flags().String("encryption-key", "", "Key the results were encrypted with")

	aggregateCmd.Flags().String("root", "results", "Directory tree holding summary files")
	aggregateCmd.Flags().StringP("out", "o", "-", "Output path ('-' for stdout)")
}
