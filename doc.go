/*
Package ingest triggers a BigQuery load job over HTTP.

A single endpoint instructs BigQuery to ingest a CSV object from Cloud
Storage into a fixed destination table, overwriting its contents, blocks
until the job finishes, and responds with the table's resulting row count:

	{"data": 5}

Source and destination come from the environment, resolved once at startup:

	GCP_PROJECT_ID    project of the destination table
	BQ_DATASET        destination dataset
	BQ_TABLE_NAME     destination table
	GCS_BUCKET_NAME   source bucket
	GCS_CSV_FILE_PATH object path within the bucket

Optional settings: PORT (default 8080), LOG_LEVEL, LOG_PRETTY, and
SLACK_TOKEN/SLACK_CHANNEL to post each load result to a Slack channel.

Each invocation overwrites the destination table with the latest source
file. The load is CSV with one header row skipped; the wait for the job has
no client-side timeout, and a caller that disconnects does not stop it.
*/
package ingest
