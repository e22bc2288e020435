package demo

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/charmingruby/lambdalab/catalog"
	"github.com/charmingruby/lambdalab/fp"
	"github.com/charmingruby/lambdalab/seq"
	"github.com/charmingruby/lambdalab/task"
)

var (
	features  = []string{"Lambdas", "Default Method", "Stream API", "Date and Time API"}
	g7        = []string{"USA", "Japan", "France", "Germany", "Italy", "U.K.", "Canada"}
	costs     = []int{100, 200, 300, 400, 500}
	primes    = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	languages = []string{"Java", "Scala", "C++", "Haskell", "Lisp"}
)

var registry = []Demo{
	{"default-method", "fixed-body greeting shared by every album", defaultMethod},
	{"map-upper", "upper-case each string and collect", mapUpper},
	{"join-countries", "upper- and lower-case the G7 and join them", joinCountries},
	{"for-each", "print each feature with a literal and a method value", forEach},
	{"thread", "fire-and-forget background work", thread},
	{"predicate", "combine two predicates with And", predicate},
	{"reduce-seed", "sum with a seed", reduceSeed},
	{"vat", "apply 12% VAT to each cost", vat},
	{"vat-total", "total the costs after VAT with a seedless reduce", vatTotal},
	{"filter", "keep strings longer than two characters", filter},
	{"count", "count strings longer than two characters", count},
	{"group-count", "group strings and count each group", groupCount},
	{"distinct", "distinct squares", distinct},
	{"summary-stats", "count, min, max, sum and average of primes", summaryStats},
	{"predicate-function", "pass predicates to a helper", predicateFunction},
	{"long-tracks", "names of the first two tracks over a minute", longTracks},
	{"longest-track", "the longest track of all albums", longestTrack},
	{"generate-random", "five random numbers from a generator", generateRandom},
	{"generate-constant", "a constant generator truncated to three", generateConstant},
	{"iterate", "successor function seeded with zero", iterate},
	{"sort-by-length", "lower-case and sort longest first", sortByLength},
	{"functional-interface", "a function value as a one-method capability", functionalInterface},
}

func defaultMethod(env Env) error {
	p := newPrinter(env)
	for _, album := range catalog.Albums() {
		p.Println(album.Welcome())
	}
	return p.err
}

func mapUpper(env Env) error {
	p := newPrinter(env)
	p.Println(seq.ToSlice(seq.Map(seq.Of("abc", "xyz", "hh"), strings.ToUpper)))
	p.Println(seq.ToSlice(seq.Map(seq.FromSlice(features), func(s string) string {
		return strings.ToUpper(s)
	})))
	return p.err
}

func joinCountries(env Env) error {
	p := newPrinter(env)
	p.Println(seq.Join(seq.Map(seq.FromSlice(g7), func(s string) string { return strings.ToUpper(s) }), ", "))
	p.Println(seq.Join(seq.Map(seq.FromSlice(g7), strings.ToLower), ", "))
	return p.err
}

func forEach(env Env) error {
	p := newPrinter(env)
	seq.ForEach(seq.FromSlice(features), func(s string) { p.Println(s) })
	seq.ForEach(seq.FromSlice(features), p.Line)
	return p.err
}

type oldStyleGreeting struct {
	p *printer
}

func (g oldStyleGreeting) Run() {
	g.p.Println("Hello from a named Runnable type")
}

func thread(env Env) error {
	p := newPrinter(env)
	task.Go(oldStyleGreeting{p: &printer{w: env.Out}})
	task.Go(task.RunnableFunc(func() {
		_, _ = env.Out.Write([]byte("In a goroutine (function value)\n"))
	}))
	p.Println("spawned two goroutines without waiting for them")
	return p.err
}

func predicate(env Env) error {
	p := newPrinter(env)
	startsWithJ := fp.Predicate[string](func(n string) bool { return strings.HasPrefix(n, "J") })
	fourLetterLong := fp.Predicate[string](func(n string) bool { return len(n) == 4 })

	names := seq.Of("Java", "c++", "Scala", "JDK8")
	seq.ForEach(seq.Filter(names, startsWithJ.And(fourLetterLong)), func(n string) {
		p.Println("Name which starts with 'J' and four letter long is: " + n)
	})
	return p.err
}

func reduceSeed(env Env) error {
	p := newPrinter(env)
	p.Println(seq.Fold(seq.Of(1, 2, 3), 10, func(acc, element int) int { return acc + element }))
	return p.err
}

func withVAT(cost int) float64 {
	return float64(cost) + .12*float64(cost)
}

func vat(env Env) error {
	p := newPrinter(env)
	for _, cost := range costs {
		p.Println(withVAT(cost))
	}
	seq.ForEach(seq.Map(seq.FromSlice(costs), withVAT), func(price float64) { p.Println(price) })
	return p.err
}

func vatTotal(env Env) error {
	p := newPrinter(env)
	total := 0.0
	for _, cost := range costs {
		total += withVAT(cost)
	}
	p.Println("Total :", total)

	prices := seq.Map(seq.FromSlice(costs), withVAT)
	bill, err := seq.Reduce(prices, func(sum, cost float64) float64 { return sum + cost }).ToResult(seq.ErrEmpty).Unwrap()
	if err != nil {
		return err
	}
	p.Println("Total :", bill)
	return p.err
}

func longerThanTwo(s string) bool { return len(s) > 2 }

func filter(env Env) error {
	p := newPrinter(env)
	all := append(slices.Clone(features), "X")
	filtered := seq.ToSlice(seq.Filter(seq.FromSlice(all), longerThanTwo))
	p.Printf("Original List : %v, filtered list : %v\n", all, filtered)
	return p.err
}

func count(env Env) error {
	p := newPrinter(env)
	all := append(slices.Clone(features), "X")
	p.Println(seq.Count(seq.Filter(seq.FromSlice(all), longerThanTwo)))
	return p.err
}

func groupCount(env Env) error {
	p := newPrinter(env)
	all := append(slices.Clone(features), "X", "Lambdas", "Stream API")
	p.Println(seq.CountBy(seq.Filter(seq.FromSlice(all), longerThanTwo), fp.Identity[string]))
	return p.err
}

func distinct(env Env) error {
	p := newPrinter(env)
	numbers := []int{9, 10, 3, 4, 7, 3, 4}
	squares := seq.ToSlice(seq.Distinct(seq.Map(seq.FromSlice(numbers), func(i int) int { return i * i })))
	p.Printf("Original List : %v,  Square Without duplicates : %v\n", numbers, squares)
	return p.err
}

func summaryStats(env Env) error {
	p := newPrinter(env)
	stats := seq.Summarize(seq.FromSlice(primes), fp.Identity[int])
	p.Println("Highest prime number in List :", stats.Max())
	p.Println("Lowest prime number in List :", stats.Min())
	p.Println("Sum of all prime numbers :", stats.Sum())
	p.Println("Average of all prime numbers :", stats.Average())
	return p.err
}

func printMatching(p *printer, names []string, condition fp.Predicate[string]) {
	seq.ForEach(seq.Filter(seq.FromSlice(names), condition), p.Line)
}

func predicateFunction(env Env) error {
	p := newPrinter(env)
	p.Println("Languages which starts with J :")
	printMatching(p, languages, func(s string) bool { return strings.HasPrefix(s, "J") })
	p.Println("Languages which ends with a :")
	printMatching(p, languages, func(s string) bool { return strings.HasSuffix(s, "a") })
	p.Println("Print all languages :")
	printMatching(p, languages, fp.Always[string]())
	p.Println("Print no language :")
	printMatching(p, languages, fp.Never[string]())
	p.Println("Print language whose length greater than 4:")
	printMatching(p, languages, func(s string) bool { return len(s) > 4 })
	return p.err
}

func longTracks(env Env) error {
	p := newPrinter(env)
	names := catalog.LongTrackNames(catalog.Albums(), 60, 2)
	sorted := seq.ToSlice(seq.SortedNatural(seq.FromSlice(lo.Keys(names))))
	p.Println(sorted)
	return p.err
}

func longestTrack(env Env) error {
	p := newPrinter(env)
	track, err := catalog.LongestTrack(catalog.Albums())
	if err != nil {
		return err
	}
	p.Println(track)
	return p.err
}

func generateRandom(env Env) error {
	p := newPrinter(env)
	seq.ForEach(seq.Take(seq.Generate(env.Rand.Float64), 5), func(f float64) { p.Println(f) })
	return p.err
}

func generateConstant(env Env) error {
	p := newPrinter(env)
	seq.ForEach(seq.Take(seq.Generate(fp.Constant("hello world")), 3), p.Line)
	return p.err
}

func iterate(env Env) error {
	p := newPrinter(env)
	seq.ForEach(seq.Take(seq.Iterate(0, func(x int) int { return x + 1 }), 5), func(v int) { p.Println(v) })
	return p.err
}

func sortByLength(env Env) error {
	p := newPrinter(env)
	messages := []string{"Hello, World!", "Welcome to the Go playground.", "This pad is running Go 1.25."}
	lower := seq.Map(seq.FromSlice(messages), strings.ToLower)
	longestFirst := seq.Reversed(seq.Comparing(func(s string) int { return len(s) }))
	seq.ForEach(seq.Sorted(lower, longestFirst), p.Line)
	for _, m := range messages {
		p.Println(m)
	}
	return p.err
}

func functionalInterface(env Env) error {
	p := newPrinter(env)
	track := catalog.Track{Name: "abc", Length: 123}
	var name fp.Transformer[catalog.Track, string] = func(t catalog.Track) string { return t.Name }
	p.Println(fp.To[catalog.Track, string](name, track))
	return p.err
}
