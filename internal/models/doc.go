// Package models defines the core domain models for the expense tracker.
//
// # Models
//
//   - Group: a named expense bucket ("Trip", "Household", ...), seeded at startup
//   - Expense: a single recorded payment, owned by exactly one group
//   - User: a person who can pay for or share an expense
//
// # Design Principles
//
//  1. **Avoid circular references**: relationships are ID strings, not pointers
//  2. **Write-once expenses**: expenses are never updated or deleted
//  3. **Read-side refs**: GroupRef and UserRef carry only the joined fields an
//     API response surfaces; they are populated on reads and never stored
package models
