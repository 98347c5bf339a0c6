package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/g-m-twostay/go-rbtree/Trees"
)

var demoKeys = []int{14, 16, 9, 17, 8, 13, 7, 11}

// go run ./cmd/rbtree demo
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "insert 14 16 9 17 8 13 7 11, then delete 9",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := Trees.New[int](uint32(viper.GetUint("hint")))
		for _, k := range demoKeys {
			if _, err := t.Insert(k); err != nil {
				return errors.Wrapf(err, "insert %d", k)
			}
			log.Debugf("inserted %d, height %d", k, t.Height())
		}
		printInOrder(os.Stdout, t)
		printLevels(os.Stdout, t)

		n, ok := t.Search(9)
		if !ok {
			return errors.New("9 is missing")
		}
		t.Delete(n)
		log.Infof("deleted 9")
		printInOrder(os.Stdout, t)
		printLevels(os.Stdout, t)

		if n, ok = t.Search(11); ok {
			if p, ok := t.Predecessor(n); ok {
				log.Infof("predecessor of 11: %d", p.Key())
			}
			if s, ok := t.Successor(n); ok {
				log.Infof("successor of 11: %d", s.Key())
			}
		}
		return verify(t)
	},
}
