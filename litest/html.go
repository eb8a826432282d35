package litest

import (
	"fmt"
	"html"
	"io"
	"time"
)

// HTMLFormatter renders the event stream as a self-contained HTML document
// with inline styling and toggle controls for passes and messages.
type HTMLFormatter struct {
	NoopFormatter
	w io.Writer
}

// NewHTMLFormatter is a FormatterFactory producing an HTML formatter.
func NewHTMLFormatter(w io.Writer) Formatter {
	return &HTMLFormatter{w: w}
}

func (f *HTMLFormatter) lineNr(line int) string {
	return FormatLineNumber(line)
}

// logItem writes one entry in a test's output list. All caller-supplied text
// goes through html.EscapeString; code and em fragments are built here.
func (f *HTMLFormatter) logItem(line int, class, body string) {
	fmt.Fprintf(f.w, "<div class='log-item %s'><span class='line-nr'>%s</span>%s</div>",
		class, f.lineNr(line), body)
}

func code(s string) string { return "<code>" + html.EscapeString(s) + "</code>" }
func em(s string) string   { return "<em>" + html.EscapeString(s) + "</em>" }

func (f *HTMLFormatter) TestSuiteStart(suite *Suite) {
	fmt.Fprint(f.w, "<!doctype html><head><style type='text/css'>"+htmlStyle+"</style></head>")
	fmt.Fprint(f.w, "<body><div id='content'>")
	fmt.Fprintf(f.w, "<h1>%s</h1>", html.EscapeString(suite.Name))
	fmt.Fprintf(f.w, "<p>Generated by litest at <time>%s</time>.</p>",
		time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprint(f.w, "<script type='text/javascript'>"+
		"var pass = document.getElementsByClassName('pass'); var passVisible = true;"+
		"var mess = document.getElementsByClassName('message'); var messagesVisible = true;"+
		"</script>")
	fmt.Fprint(f.w, "<button onclick=\"for (var i = 0; i < pass.length; i++) "+
		"pass[i].style.display = passVisible ? 'none' : 'block'; passVisible = !passVisible;\">Toggle passes</button>")
	fmt.Fprint(f.w, "<button onclick=\"for (var i = 0; i < mess.length; i++) "+
		"mess[i].style.display = messagesVisible ? 'none' : 'block'; messagesVisible = !messagesVisible;\">Toggle messages</button>")
}

func (f *HTMLFormatter) TestHeader(test *Test) {
	fmt.Fprintf(f.w, "<div class='test' id='test%d'>", test.Index)
	fmt.Fprintf(f.w, "<h2 id='test-%d-header'> Test %d: <span class='test-title'>%s</span></h2>",
		test.Index, test.Index, html.EscapeString(test.Name))
	fmt.Fprintf(f.w, "<p>In file <span class='test-file'><a href='file://%s'>%s</a></span></p>",
		html.EscapeString(test.File), html.EscapeString(test.File))
	fmt.Fprint(f.w, "<div class='output'>")
}

func (f *HTMLFormatter) TestFooter(test *Test, stats Stats) {
	var class, badge string
	switch {
	case test.Aborted:
		class, badge = "aborted", "╳"
	case stats.Fails == 0:
		class, badge = "passed", "✓"
	default:
		class, badge = "failed", "×"
	}
	fmt.Fprintf(f.w, "<script type='text/javascript'>"+
		"document.getElementById('test-%d-header').classList.add('%s');</script>",
		test.Index, class)
	fmt.Fprintf(f.w, "</div><div class='result-badge'>%s</div></div>", badge)
}

func (f *HTMLFormatter) TestSuiteEnd(suite *Suite) {
	total := suite.TotalTestStats()
	rate := 0.0
	if n := total.Passes + total.Fails; n > 0 {
		rate = float64(total.Passes) / float64(n) * 100
	}
	fmt.Fprint(f.w, "<h2>Summary</h2>")
	fmt.Fprintf(f.w, "<p>Total passed assertions: %d</p>", total.Passes)
	fmt.Fprintf(f.w, "<p>Total failed assertions: %d</p>", total.Fails)
	fmt.Fprintf(f.w, "<p>Success rate: %.4g%%</p>", rate)
	fmt.Fprint(f.w, "</div></body>")
}

func (f *HTMLFormatter) AbortedTest(line int, reason string) {
	f.logItem(line, "abort",
		"↳ Test aborted: <span class='abort-msg'>"+html.EscapeString(reason)+"</span>")
}

func (f *HTMLFormatter) Message(line int, text string) {
	f.logItem(line, "message", "<span class='msg-txt'>"+html.EscapeString(text)+"</span>")
}

func (f *HTMLFormatter) Expr(line int, expr, value string) {
	f.logItem(line, "message", "Print expression "+code(expr)+": "+code(value))
}

func (f *HTMLFormatter) PassedCheck(line int, expr string) {
	f.logItem(line, "pass check", "Passed check: "+code(expr))
}

func (f *HTMLFormatter) PassedThrow(line int, expr string) {
	f.logItem(line, "pass throw", "Passed throw check: "+code(expr))
}

func (f *HTMLFormatter) PassedEquals(line int, expr, value string) {
	f.logItem(line, "pass equals", "Passed equals: "+code(expr)+" == "+code(value))
}

func (f *HTMLFormatter) UnexpectedException(line int, expr, message string) {
	f.logItem(line, "fail unexpected-exception",
		"Caught exception: "+em(message)+" in: "+code(expr))
}

func (f *HTMLFormatter) FailedCheck(line int, expr string) {
	f.logItem(line, "fail broken-assertion", "Failed check: "+code(expr))
}

func (f *HTMLFormatter) FailedThrow(line int, expr string) {
	f.logItem(line, "fail no-exception", "Expected exception: "+code(expr))
}

func (f *HTMLFormatter) FailedEquals(line int, expr, expected, actual string) {
	f.logItem(line, "fail unexpected-value",
		"Failed equals: "+code(expr)+" != "+code(expected)+", got "+code(actual))
}

func (f *HTMLFormatter) ManualFailure(line int, reason string) {
	f.logItem(line, "fail manual", "Manual failure: "+em(reason))
}

const htmlStyle = `
body { font-family: 'Helvetica', sans-serif; max-width: 900px; margin: auto;
	background-color: #555; padding: 1em; }
h1 { text-align: center; border-bottom: 2px dashed black; }
div.test { position: relative; margin: 4em 0; }
div#content { padding: 1em 2em; background-color: #eee; box-shadow: 0px 0px 5px #333; }
div.output:not(:empty) { margin: 1em; border: 2pt solid #999; }
h2 { font-size: 15pt; padding: 0.2em; border-bottom: 2pt solid grey; color: white; }
div.log-item:after { display: inline-block; width: 2em; text-align: center;
	float: right; border-left: 2pt solid grey; }
div.fail:after { content: '×'; background-color: darkred; color: white; }
div.message:after { content: '!'; background-color: yellow; color: black; }
div.abort:after { content: '╳'; background-color: black; color: white; }
div.pass:after { content: '✓'; background-color: green; color: white; }
div.pass { color: darkgreen; }
div.failure { color: darkred; }
span.abort-msg { background-color: black; color: white; }
code { background-color: darkgreen; color: white; padding: 0.1em 0.5em; border-radius: 0.5em; }
.log-item.fail code { background-color: darkred; }
.log-item.message code { color: black; background-color: yellow; }
.line-nr { color: black; background-color: rgb(200, 200, 200);
	border-right: 3px solid #999; padding-right: 0.5em; width: 3em; margin-right: 1em;
	text-align: right; font-family: monospace; display: inline-block; }
.log-item { line-height: 22pt; }
.code { white-space: pre; }
.log-item:nth-child(even) { background-color: white; }
.log-item:nth-child(odd) { background-color: #eee; }
.result-badge { position: absolute; top: 0; right: 0; padding: 0.5em; color: white; }
h2.passed { background-color: darkgreen; }
h2.failed { background-color: darkred; }
h2 { background-color: black; }
`
