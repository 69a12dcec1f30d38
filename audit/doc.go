/*
Package audit appends immutable entries to the audit_entry table.

# Recording

Record writes one entry through any Execer (*sql.DB or *sql.Tx):

	err := audit.Record(tx, &actorID, audit.ActionVoteCast,
		audit.VoteCastDetails{ElectionID: eID, CandidateID: cID}, now)

Passing a *sql.Tx places the append inside the caller's transaction.
Vote casting relies on this: vote provenance is part of the integrity
guarantee, so the VOTE_CAST entry commits atomically with the vote row
and the tally increment, or not at all.

For administrative lifecycle actions the append is best-effort:

	audit.RecordBestEffort(db, &actorID, audit.ActionElectionEnded, details, now)

A failed write is logged and swallowed so it can never block the
primary action.

# Details

Each action tag has a fixed details schema (VoteCastDetails,
ElectionDetails, CandidateAddedDetails) serialized as JSON, rather than
an open-ended map.
*/
package audit
