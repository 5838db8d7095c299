package mysql

// Newest document wins; id breaks ties within the same timestamp.
const latestDocumentSQL = `
SELECT body
FROM catalog_documents
WHERE name = ?
ORDER BY updated_at DESC, id DESC
LIMIT 1
`

const pingDocumentsSQL = `SELECT 1 FROM catalog_documents LIMIT 1`
