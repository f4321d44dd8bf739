package probe_test

import (
	"fmt"
	"testing"

	"github.com/probekit/customprobe/cmd/lib/probe"
)

func TestResultVerdict(t *testing.T) {
	for _, c := range []struct {
		result probe.Result
		want   string
	}{
		{result: probe.Result{StatusCode: 418, ContentType: "application/json"}, want: "OK"},
		{result: probe.Result{StatusCode: 418, ContentType: "application/jsonx"}, want: "OK"},
		{result: probe.Result{StatusCode: 418, ContentType: " application/json"}, want: "KO 418  application/json"},
		{result: probe.Result{StatusCode: 418}, want: "KO 418 "},
		{result: probe.Result{StatusCode: 200, ContentType: "application/json"}, want: "KO 200 application/json"},
	} {
		t.Run(c.want, func(t *testing.T) {
			if got := c.result.Verdict(); got != c.want {
				t.Errorf("Verdict() = %q, want %q", got, c.want)
			}
			if got, want := c.result.OK(), c.want == "OK"; got != want {
				t.Errorf("OK() = %v, want %v", got, want)
			}
		})
	}
}

func ExampleResult_Verdict() {
	fmt.Println(probe.Result{StatusCode: 418, ContentType: "application/json; charset=utf-8"}.Verdict())
	fmt.Println(probe.Result{StatusCode: 500, ContentType: "text/html; charset=utf-8"}.Verdict())
	// Output:
	// OK
	// KO 500 text/html; charset=utf-8
}
