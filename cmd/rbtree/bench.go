package main

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/g-m-twostay/go-rbtree/Trees"
)

// go run ./cmd/rbtree bench --n 1000000
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "insert n random keys, then remove them all",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cmd.Flags().GetInt("n")
		if err != nil {
			return err
		}
		if n <= 0 {
			return errors.Errorf("--n must be positive, got %d", n)
		}
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}
		rg := rand.New(rand.NewSource(seed))
		keys := rg.Perm(n)

		t := Trees.New[int](uint32(viper.GetUint("hint")))
		start := time.Now()
		for _, k := range keys {
			if _, err := t.Insert(k); err != nil {
				return errors.Wrapf(err, "insert %d", k)
			}
		}
		log.WithFields(log.Fields{
			"n":            n,
			"height":       t.Height(),
			"black_height": t.BlackHeight(),
		}).Infof("inserted in %s", time.Since(start))
		if err := verify(t); err != nil {
			return err
		}

		rg.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		start = time.Now()
		for _, k := range keys {
			if !t.Remove(k) {
				return errors.Errorf("%d is missing", k)
			}
		}
		log.Infof("removed in %s", time.Since(start))
		return verify(t)
	},
}

func init() {
	benchCmd.Flags().Int("n", 1<<20, "number of keys")
	benchCmd.Flags().Int64("seed", 0, "random seed")
}
