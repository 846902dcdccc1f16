package main

import "strconv"

// rewriteSizeArgs turns the two-value form "-s W H" or "--size W H" into
// "--size=W,H" so pflag can parse it as one slice flag. Arguments after
// "--" are left alone.
func rewriteSizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			out = append(out, args[i:]...)
			break
		}
		if (a == "-s" || a == "--size") && i+2 < len(args) && isNumber(args[i+1]) && isNumber(args[i+2]) {
			out = append(out, "--size="+args[i+1]+","+args[i+2])
			i += 2
			continue
		}
		out = append(out, a)
	}
	return out
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
