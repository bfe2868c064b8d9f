package cards

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/tiles/internal/ui/render"
	"github.com/llehouerou/tiles/internal/ui/styles"
)

// KPIs shows the agent's headline numbers.
type KPIs struct {
	Calls int
	AHT   string
}

func (k KPIs) Render(_, title string, width int) string {
	st := styles.T().S()
	return Header(title, width) + "\n" + lines(width,
		render.Row(st.Muted.Render("Your Calls"), st.Muted.Render("AHT"), width),
		render.Row(st.Title.Render(humanize.Comma(int64(k.Calls))), st.Title.Render(k.AHT), width),
	)
}

// Hours and HourlyCalls are the default queue volume, 8am to 5pm.
var (
	Hours       = []int{8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	HourlyCalls = []int{12, 8, 3, 14, 20, 16, 10, 18, 22, 15}
)

const chartHeight = 4

var eighths = []rune(" ▁▂▃▄▅▆▇█")

// QueueOverview draws hourly call volume as a bar chart. The part of each
// bar handled by the agent is highlighted.
type QueueOverview struct {
	Hours []int
	Calls []int
	// User is the agent's share per hour. When its length does not match
	// Calls, 30% of each hour is assumed.
	User []int
}

func (q QueueOverview) Render(_, title string, width int) string {
	st := styles.T().S()
	n := len(q.Calls)
	if n == 0 {
		return Header(title, width) + "\n" + st.Muted.Render("No calls yet")
	}

	user := q.User
	if len(user) != n {
		user = make([]int, n)
		for i, v := range q.Calls {
			user[i] = max(0, int(math.Round(float64(v)*0.3)))
		}
	}

	peak := 0
	total, mine := 0, 0
	for i, v := range q.Calls {
		peak = max(peak, v)
		total += v
		mine += user[i]
	}
	barWidth := max((width-(n-1))/n, 1)

	rows := make([]string, 0, chartHeight+2)
	for r := chartHeight - 1; r >= 0; r-- {
		var b strings.Builder
		for i, v := range q.Calls {
			if i > 0 {
				b.WriteByte(' ')
			}
			cell := string(eighths[barLevel(v, peak, r)])
			style := st.Muted
			if barLevel(user[i], peak, r) > 0 {
				style = st.Accent
			}
			b.WriteString(style.Render(strings.Repeat(cell, barWidth)))
		}
		rows = append(rows, b.String())
	}

	var labels strings.Builder
	for i, h := range q.Hours {
		if i >= n {
			break
		}
		if i > 0 {
			labels.WriteByte(' ')
		}
		labels.WriteString(render.Pad(hourLabel(h), barWidth))
	}
	rows = append(rows,
		st.Subtle.Render(labels.String()),
		st.Base.Render("Calls "+humanize.Comma(int64(total)))+st.Subtle.Render(" · ")+
			st.Accent.Render("You "+humanize.Comma(int64(mine))),
	)
	return Header(title, width) + "\n" + lines(width, rows...)
}

// barLevel returns how many eighths of chart row r a bar of value v fills.
func barLevel(v, peak, r int) int {
	if peak <= 0 || v <= 0 {
		return 0
	}
	filled := int(math.Round(float64(v) / float64(peak) * chartHeight * 8))
	return min(max(filled-r*8, 0), 8)
}

func hourLabel(h int) string {
	if h%12 == 0 {
		return "12"
	}
	return strconv.Itoa(h % 12)
}

// Queue is one call queue's day so far.
type Queue struct {
	Name       string
	Waiting    int
	AHT        string
	Abandoned  int
	Service    string
	TotalCalls int
}

// Queues is the default queue list.
var Queues = []Queue{
	{Name: "Consumer", Waiting: 4, AHT: "00:04:32", Abandoned: 1, Service: "92%", TotalCalls: 128},
	{Name: "Premium", Waiting: 2, AHT: "00:03:58", Abandoned: 0, Service: "95%", TotalCalls: 84},
	{Name: "Intermodal", Waiting: 6, AHT: "00:05:10", Abandoned: 2, Service: "88%", TotalCalls: 201},
	{Name: "International", Waiting: 3, AHT: "00:06:12", Abandoned: 1, Service: "90%", TotalCalls: 97},
}

// QueueList lists each queue with its waiting calls and service level.
type QueueList struct {
	Queues []Queue
}

func (q QueueList) Render(_, title string, width int) string {
	st := styles.T().S()
	rows := make([]string, 0, 2*len(q.Queues)+1)
	total := 0
	for _, queue := range q.Queues {
		total += queue.TotalCalls
		rows = append(rows,
			render.Row(
				st.Title.Render(strings.ToUpper(queue.Name)),
				st.Muted.Render(english.Plural(queue.Waiting, "call", "")+" waiting"),
				width,
			),
			st.Subtle.Render("AHT "+queue.AHT+" · abandoned "+strconv.Itoa(queue.Abandoned)+" · SL "+queue.Service),
		)
	}
	rows = append(rows, st.Base.Render("Total calls "+humanize.Comma(int64(total))))
	return Header(title, width) + "\n" + lines(width, rows...)
}
