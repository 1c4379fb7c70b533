package json

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/docukv/djson/cmd/util"
	"github.com/docukv/djson/rpc/client"
	"github.com/docukv/djson/rpc/encoder"
)

var (
	setCmd = &cobra.Command{
		Use:   "set [key] [path] [value]",
		Short: "Sets the JSON value at a path inside a document",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			condition, _ := cmd.Flags().GetString("condition")

			var written bool
			var err error
			switch condition {
			case "":
				written, err = store.Set(args[0], args[1], args[2])
			case "xx":
				written, err = store.SetWithCondition(args[0], args[1], args[2], encoder.OnlyIfExists)
			case "nx":
				written, err = store.SetWithCondition(args[0], args[1], args[2], encoder.OnlyIfDoesNotExist)
			default:
				return fmt.Errorf("condition must be one of xx, nx")
			}
			if err != nil {
				return err
			}
			if !written {
				fmt.Println("condition not met, nothing written")
				return nil
			}
			fmt.Println("OK")
			return nil
		},
	}
	getCmd = &cobra.Command{
		Use:   "get [key] [path...]",
		Short: "Returns the serialized JSON value at the given paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indent, _ := cmd.Flags().GetString("indent")
			newline, _ := cmd.Flags().GetString("newline")
			space, _ := cmd.Flags().GetString("space")

			opts := encoder.GetOptions{Indent: indent, Newline: newline, Space: space}
			value, found, err := store.GetWithOptions(args[0], opts, args[1:]...)
			if err != nil {
				return err
			}
			if !found {
				fmt.Println("(nil)")
				return nil
			}
			fmt.Println(value)
			return nil
		},
	}
	arrAppendCmd = &cobra.Command{
		Use:   "arrappend [key] [path] [value...]",
		Short: "Appends values to the array at a path",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := store.ArrAppend(args[0], args[1], args[2:]...)
			if err != nil {
				return err
			}
			printCounts(result.Counts, result.Count, result.Counts != nil)
			return nil
		},
	}
	arrInsertCmd = &cobra.Command{
		Use:   "arrinsert [key] [path] [index] [value...]",
		Short: "Inserts values into the array at a path",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("index must be a number: %w", err)
			}
			result, err := store.ArrInsert(args[0], args[1], index, args[3:]...)
			if err != nil {
				return err
			}
			printCounts(result.Counts, result.Count, result.Counts != nil)
			return nil
		},
	}
	arrLenCmd = &cobra.Command{
		Use:   "arrlen [key] [path]",
		Short: "Reports the length of the array at a path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(args, store.ArrLen, store.ArrLenAt)
		},
	}
	objLenCmd = &cobra.Command{
		Use:   "objlen [key] [path]",
		Short: "Reports the member count of the object at a path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(args, store.ObjLen, store.ObjLenAt)
		},
	}
	objKeysCmd = &cobra.Command{
		Use:   "objkeys [key] [path]",
		Short: "Reports the member names of the object at a path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				keys, found, err := store.ObjKeys(args[0])
				if err != nil {
					return err
				}
				if !found {
					fmt.Println("(nil)")
					return nil
				}
				fmt.Println(keys)
				return nil
			}

			result, found, err := store.ObjKeysAt(args[0], args[1])
			if err != nil {
				return err
			}
			if !found {
				fmt.Println("(nil)")
				return nil
			}
			if result.KeysPerMatch != nil {
				for i, keys := range result.KeysPerMatch {
					fmt.Printf("%d) %v\n", i+1, keys)
				}
				return nil
			}
			fmt.Println(result.Keys)
			return nil
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [key] [path]",
		Short: "Deletes the locations matched by a path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var deleted int64
			var err error
			if len(args) == 1 {
				deleted, err = store.Del(args[0])
			} else {
				deleted, err = store.DelAt(args[0], args[1])
			}
			if err != nil {
				return err
			}
			fmt.Printf("deleted %d location(s)\n", deleted)
			return nil
		},
	}
	toggleCmd = &cobra.Command{
		Use:   "toggle [key] [path]",
		Short: "Flips the boolean at a path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				value, found, err := store.Toggle(args[0])
				if err != nil {
					return err
				}
				if !found {
					fmt.Println("(nil)")
					return nil
				}
				fmt.Println(value)
				return nil
			}

			result, found, err := store.ToggleAt(args[0], args[1])
			if err != nil {
				return err
			}
			if !found {
				fmt.Println("(nil)")
				return nil
			}
			if result.Values != nil {
				printBools(result.Values)
				return nil
			}
			fmt.Println(result.Value)
			return nil
		},
	}
	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Reports per-shard store statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := store.StoreInfo()
			if err != nil {
				return err
			}
			for shard, documents := range info {
				fmt.Printf("%-12s: %d document(s)\n", shard, documents)
			}
			return nil
		},
	}
)

func init() {
	setCmd.Flags().String("condition", "", util.WrapString("Conditional write: xx (only if exists) or nx (only if not exists)"))
	getCmd.Flags().String("indent", "", util.WrapString("Indentation prefix per nesting level"))
	getCmd.Flags().String("newline", "", util.WrapString("Line terminator between elements"))
	getCmd.Flags().String("space", "", util.WrapString("Separator after each object key's colon"))
}

// runCount runs a counting command with the root or path variant.
func runCount(
	args []string,
	root func(string) (int64, bool, error),
	at func(string, string) (client.CountResult, bool, error),
) error {
	if len(args) == 1 {
		n, found, err := root(args[0])
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("(nil)")
			return nil
		}
		fmt.Println(n)
		return nil
	}

	result, found, err := at(args[0], args[1])
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("(nil)")
		return nil
	}
	printCounts(result.Counts, result.Count, result.Counts != nil)
	return nil
}

// printCounts prints a scalar or per-match count result.
func printCounts(counts []*int64, count int64, multi bool) {
	if !multi {
		fmt.Println(count)
		return
	}
	for i, n := range counts {
		if n == nil {
			fmt.Printf("%d) (nil)\n", i+1)
		} else {
			fmt.Printf("%d) %d\n", i+1, *n)
		}
	}
}

// printBools prints a per-match toggle result.
func printBools(values []*bool) {
	for i, b := range values {
		if b == nil {
			fmt.Printf("%d) (nil)\n", i+1)
		} else {
			fmt.Printf("%d) %t\n", i+1, *b)
		}
	}
}
