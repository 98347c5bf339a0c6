package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/g-m-twostay/go-rbtree/Trees"
)

// go run ./cmd/rbtree run 5 3 8 1 --delete 3
var runCmd = &cobra.Command{
	Use:   "run KEY... [--delete KEY,...]",
	Short: "insert the keys, delete the --delete keys and print the tree",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := parseKeys(args)
		if err != nil {
			return err
		}
		dels, err := cmd.Flags().GetIntSlice("delete")
		if err != nil {
			return err
		}

		t := Trees.New[int](uint32(viper.GetUint("hint")))
		for _, k := range keys {
			if _, err := t.Insert(k); err != nil {
				return errors.Wrapf(err, "insert %d", k)
			}
		}
		for _, k := range dels {
			if !t.Remove(k) {
				log.Warnf("%d isn't in the tree", k)
			}
		}
		log.Debugf("%d nodes", t.Size())

		printInOrder(os.Stdout, t)
		printLevels(os.Stdout, t)
		if err := verify(t); err != nil {
			return err
		}
		log.Info("tree is valid")
		return nil
	},
}

func init() {
	runCmd.Flags().IntSlice("delete", nil, "keys to delete after inserting")
}
