package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"ipoadvisor/internal/archive"
	"ipoadvisor/internal/console"
	"ipoadvisor/internal/gateway"
	"ipoadvisor/internal/model"
)

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// ago renders a stored timestamp relative to now, or as is when it does not parse.
func ago(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return humanize.Time(t)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printStats(w io.Writer, s model.Stats) {
	tw := table(w)
	fmt.Fprintf(tw, "contacts\t%d\t(%d pending)\n", s.Contacts.Total, s.Contacts.Pending)
	fmt.Fprintf(tw, "applications\t%d\t(%d pending)\n", s.Applications.Total, s.Applications.Pending)
	fmt.Fprintf(tw, "blog posts\t%d\t\n", s.BlogPosts)
	fmt.Fprintf(tw, "files\t%d\t\n", s.Files)
	tw.Flush()

	if len(s.RecentContacts) > 0 {
		fmt.Fprintln(w, "\nrecent contacts:")
		printContacts(w, s.RecentContacts)
	}
	if len(s.RecentApplications) > 0 {
		fmt.Fprintln(w, "\nrecent applications:")
		printApplications(w, s.RecentApplications)
	}
}

func printContacts(w io.Writer, items []model.Contact) {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tNAME\tCOMPANY\tMOBILE\tEMAIL\tSTATUS\tRECEIVED")
	for _, c := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.CompanyName, c.MobileNumber, orDash(model.Deref(c.Email)), c.Status, ago(c.CreatedAt))
	}
	tw.Flush()
}

func printApplications(w io.Writer, items []model.Application) {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tNAME\tCOMPANY\tTURNOVER\tMOBILE\tSTATUS\tRECEIVED")
	for _, a := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.Name, a.CompanyName, a.AnnualTurnover, a.MobileNumber, a.Status, ago(a.CreatedAt))
	}
	tw.Flush()
}

func printPosts(w io.Writer, posts []model.BlogPost) {
	tw := table(w)
	fmt.Fprintln(tw, "SLUG\tTITLE\tCATEGORY\tAUTHOR\tDATE")
	for _, p := range posts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Slug, p.Title, orDash(p.Category), p.Author, p.Date)
	}
	tw.Flush()
}

func printPost(w io.Writer, p model.BlogPost) {
	fmt.Fprintf(w, "%s\n%s | %s | %s | %s\n", p.Title, p.Author, p.Date, p.ReadTime, orDash(p.Category))
	if p.Excerpt != "" {
		fmt.Fprintf(w, "\n%s\n", p.Excerpt)
	}
	fmt.Fprintf(w, "\n%s\n", p.Content)
}

func printFiles(w io.Writer, files []model.UploadedFile) {
	tw := table(w)
	fmt.Fprintln(tw, "NAME\tTYPE\tSIZE\tUPLOADED")
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, orDash(string(f.Type)), console.FormatSize(f.Size), ago(f.CreatedAt))
	}
	tw.Flush()
}

// printUploads lists each upload outcome and returns how many failed.
func printUploads(w io.Writer, results []gateway.UploadResult) int {
	failed := 0
	tw := table(w)
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(tw, "ok\t%s\t%s\t%s\n", r.Name, r.File.Name, console.FormatSize(r.File.Size))
			continue
		}
		failed++
		fmt.Fprintf(tw, "failed\t%s\t%v\t\n", r.Name, r.Err)
	}
	tw.Flush()
	return failed
}

// printBackup lists each archived file and returns how many failed.
func printBackup(w io.Writer, results []archive.Result) int {
	failed := 0
	tw := table(w)
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(tw, "ok\t%s\t%s\t%s\n", r.Name, r.Key, console.FormatSize(r.Size))
			continue
		}
		failed++
		fmt.Fprintf(tw, "failed\t%s\t%v\t\n", r.Name, r.Err)
	}
	tw.Flush()
	return failed
}
