package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pbanos/ebmgrow"
	"github.com/pbanos/ebmgrow/config"
	"github.com/pbanos/ebmgrow/coordstore/redisstore"
	"github.com/pbanos/ebmgrow/feature"
	"github.com/pbanos/ebmgrow/model"
	"github.com/pbanos/ebmgrow/sampledset"
	"github.com/pbanos/ebmgrow/scratch"
	"github.com/pbanos/ebmgrow/source/mongosource"
	"github.com/pbanos/ebmgrow/source/sqlsource"
	redis "gopkg.in/redis.v5"
)

type trainCmdConfig struct {
	*rootCmdConfig
	input       string
	sqlite      string
	postgres    string
	mongo       string
	mongoColl   string
	configPath  string
	output      string
	cache       string
	featureName string
	numClasses  int
}

func trainCmd(root *rootCmdConfig) *cobra.Command {
	config := &trainCmdConfig{rootCmdConfig: root}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Grow a single-feature tree and emit its flattened model delta",
		Long:  `Grow a single-feature, histogram-based tree from a sampled training set and a training config, and write the flattened (divisions, values) delta as JSON`,
		Run: func(cmd *cobra.Command, args []string) {
			runTrain(config)
		},
	}
	cmd.Flags().StringVarP(&config.input, "input", "i", "", "path to a CSV file with sampled instances (defaults to STDIN)")
	cmd.Flags().StringVar(&config.sqlite, "sqlite", "", "path to a SQLite3 database file with an instances table")
	cmd.Flags().StringVar(&config.postgres, "postgres", "", "PostgreSQL connection URL with an instances table")
	cmd.Flags().StringVar(&config.mongo, "mongo", "", "MongoDB connection URL with an instances collection")
	cmd.Flags().StringVar(&config.mongoColl, "mongo-collection", "instances", "MongoDB collection name")
	cmd.Flags().StringVarP(&config.configPath, "config", "c", "", "path to the YAML training config (required)")
	cmd.Flags().StringVarP(&config.output, "output", "o", "", "path to write the flattened delta as JSON (defaults to STDOUT)")
	cmd.Flags().StringVar(&config.cache, "cache", "", "redis://... URL of a delta cache to check before training and populate after")
	cmd.Flags().StringVar(&config.featureName, "feature", "", "name of the feature being trained, used as the cache key (required with --cache)")
	cmd.Flags().IntVarP(&config.numClasses, "classes", "k", 1, "number of output classes K (1 for regression)")
	return cmd
}

func runTrain(c *trainCmdConfig) {
	if err := c.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ctx := context.Background()
	if c.cache != "" {
		if delta, ok, err := c.checkCache(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "checking delta cache: %v\n", err)
			os.Exit(3)
		} else if ok {
			c.Logf("cache hit for feature %s, skipping training", c.featureName)
			if err := writeDelta(c.output, delta); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			return
		}
	}
	set, err := c.sampledSet(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading training set: %v\n", err)
		os.Exit(5)
	}
	f, err := feature.New("feature", cfg.NumBins)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(6)
	}
	sc := scratch.New(3)
	delta := model.New()
	c.Logf("training feature %s with %d bins, max_splits=%d, min_instances_for_split=%d", f.Name(), f.NumBins(), cfg.MaxSplits, cfg.MinInstancesForSplit)
	gain, err := ebmgrow.TrainSingleDimensional(sc, set, f, cfg.MaxSplits, cfg.MinInstancesForSplit, delta, c.numClasses)
	if err != nil {
		fmt.Fprintf(os.Stderr, "growing tree: %v\n", err)
		os.Exit(7)
	}
	c.Logf("total gain: %f", gain)
	if c.cache != "" {
		if err := c.populateCache(ctx, delta); err != nil {
			fmt.Fprintf(os.Stderr, "populating delta cache: %v\n", err)
			os.Exit(8)
		}
	}
	if err := writeDelta(c.output, delta); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(9)
	}
}

func (c *trainCmdConfig) Validate() error {
	if c.configPath == "" {
		return fmt.Errorf("--config is required")
	}
	sources := 0
	for _, s := range []string{c.sqlite, c.postgres, c.mongo} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("only one of --sqlite, --postgres or --mongo may be given")
	}
	if c.cache != "" && c.featureName == "" {
		return fmt.Errorf("--feature is required with --cache")
	}
	if c.numClasses < 1 {
		return fmt.Errorf("--classes must be >= 1")
	}
	return nil
}

func (c *trainCmdConfig) sampledSet(ctx context.Context) (sampledset.SampledSet, error) {
	switch {
	case c.sqlite != "":
		a, err := sqlsource.OpenSQLite3(c.sqlite)
		if err != nil {
			return nil, err
		}
		return drain(ctx, a, c.numClasses)
	case c.postgres != "":
		a, err := sqlsource.OpenPostgres(c.postgres)
		if err != nil {
			return nil, err
		}
		return drain(ctx, a, c.numClasses)
	case c.mongo != "":
		return mongosource.Open(c.mongo, c.mongoColl)
	default:
		return sampledset.ReadCSVFromFilePath(c.input, c.numClasses)
	}
}

func drain(ctx context.Context, a sqlsource.Adapter, numClasses int) (sampledset.SampledSet, error) {
	out, errc := a.Instances(ctx, numClasses)
	var instances sampledset.Slice
	for inst := range out {
		instances = append(instances, inst)
	}
	if err := <-errc; err != nil {
		return nil, err
	}
	return instances, nil
}

func (c *trainCmdConfig) checkCache(ctx context.Context) (*model.SliceDelta, bool, error) {
	store, err := c.cacheStore()
	if err != nil {
		return nil, false, err
	}
	return store.Get(ctx, c.featureName)
}

func (c *trainCmdConfig) populateCache(ctx context.Context, delta *model.SliceDelta) error {
	store, err := c.cacheStore()
	if err != nil {
		return err
	}
	return store.Put(ctx, c.featureName, delta)
}

func (c *trainCmdConfig) cacheStore() (*redisstore.Store, error) {
	opts, err := redis.ParseURL(c.cache)
	if err != nil {
		return nil, fmt.Errorf("parsing --cache URL: %v", err)
	}
	rc := redis.NewClient(opts)
	return redisstore.New(rc, "ebmgrow"), nil
}

func writeDelta(outputPath string, delta *model.SliceDelta) error {
	data, err := json.Marshal(struct {
		Divisions []int     `json:"divisions"`
		Values    []float64 `json:"values"`
	}{delta.Divisions(), delta.Values()})
	if err != nil {
		return fmt.Errorf("encoding delta: %v", err)
	}
	if outputPath == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(outputPath, append(data, '\n'), 0644)
}
