/*
Package models defines the domain entities and the request/response types
exchanged over the HTTP API.

Domain entities mirror the storage schema: Election, Candidate, Vote,
AuditEntry, UserAccount. A Vote's VoterID is never serialized to JSON;
ballots are linked to voters internally but the linkage is not exposed
to API callers.

Phase, role, and verification-status string constants live here so that
the resolver, handlers, and storage schema agree on one vocabulary.
*/
package models
