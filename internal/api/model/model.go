package model

import "github.com/lib/pq"

// JobTitle is a row of the jobs_titles table: the summary shown in list views.
type JobTitle struct {
	ID           int    `db:"id"`
	Title        string `db:"title"`
	Company      string `db:"company"`
	Location     string `db:"location"`
	CreationDate string `db:"creation_date"`
}

// JobDetail is a row of the jobs_details table, keyed by job_id.
type JobDetail struct {
	JobID        int            `db:"job_id"`
	Type         string         `db:"type"`
	Salary       string         `db:"salary"`
	Skills       pq.StringArray `db:"skills"`
	Description  string         `db:"description"`
	Benefits     pq.StringArray `db:"benefits"`
	Link         string         `db:"link"`
	CreationDate string         `db:"creation_date"`
}
