// Project Structure Overview
/*
saree-sanctuary/
├── cmd/
│   └── server/
│       └── main.go
├── internal/
│   ├── config/        environment configuration
│   ├── database/      backend selection, migrations, sample data
│   ├── models/        documents, entity kinds, field tables
│   ├── validation/    payload validation against field tables
│   ├── filter/        backend-neutral query filters
│   ├── store/         document store over MongoDB, PostgreSQL or memory
│   ├── stitch/        embedding of related documents
│   ├── identity/      _id to id normalization
│   ├── services/
│   ├── handlers/
│   ├── middleware/
│   ├── i18n/
│   │   └── locales/
│   ├── router/
│   ├── utils/
│   └── tests/
├── go.mod
*/

// Package sareesanctuary is the Saree Sanctuary marketplace API. The server entry point
// lives in cmd/server.
package sareesanctuary
