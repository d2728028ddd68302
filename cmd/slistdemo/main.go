package main

import (
	"flag"
	"fmt"
	log "log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/sharedcode/slist"
	"github.com/sharedcode/slist/cel"
)

func main() {
	values := flag.String("values", "1,2,3,4", "Comma separated values of the initial chain")
	where := flag.String("where", "", "Optional CEL predicate over value and position, e.g. \"value > 3\"")
	flag.Parse()

	slist.ConfigureLogging()
	log.Info("slist demo", "version", slist.Version)

	if err := run(*values, *where); err != nil {
		log.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func parseValues(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one value is required")
	}
	return out, nil
}

func run(values string, where string) error {
	vs, err := parseValues(values)
	if err != nil {
		return err
	}

	// Link the nodes by hand, then hand the first one to the list.
	nodes := make([]*slist.Node, len(vs))
	for i, v := range vs {
		nodes[i] = slist.NewNode(v, nil)
		if i > 0 {
			nodes[i-1].SetNext(nodes[i])
		}
	}
	list, err := slist.NewWithHead(nodes[0])
	if err != nil {
		return err
	}

	if err := list.InsertFirst(slist.NewNode(0, nil)); err != nil {
		return err
	}
	if err := list.InsertLast(slist.NewNode(5, nil)); err != nil {
		return err
	}
	list.Print(os.Stdout)

	if err := list.RemoveHead(); err != nil {
		return err
	}
	list.Print(os.Stdout)

	if err := list.InsertNodeAtPosition(slist.NewNode(6, nil), 3); err != nil {
		return err
	}
	list.Print(os.Stdout)

	last := nodes[len(nodes)-1]
	if found := list.FindNode(last); found != nil {
		fmt.Println("Node is on the list:", found)
	} else {
		fmt.Println("Node is not on the list:", last)
	}
	fmt.Println("Number of elements on the list:", list.Size())

	if where == "" {
		return nil
	}
	e, err := cel.NewEvaluator("where", where)
	if err != nil {
		return err
	}
	n, pos, err := cel.Find(list, e)
	if err != nil {
		return err
	}
	if n == nil {
		log.Info("no node matches", "where", where)
		return nil
	}
	fmt.Printf("First node matching %q is at position %d: %v\n", where, pos, n)
	return nil
}
