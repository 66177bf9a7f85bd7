// Package testfixture holds frame documents shared by package tests.
package testfixture

// Simple is a single frame spread over several lines.
const Simple = `
(define-frame BURNS
  (isa (value (violent-mop)))
  (actor
    (value (non-volitional-agent)))
  (object
    (value (physical-object)))
)`

// Frames holds several frames mixed with comments.
const Frames = `
(in-package :reps)
;;; The BURNS frame
(define-frame BURNS
          (isa (value (violent-mop)))
  (actor
    (value (non-volitional-agent)))
  (object
    (value (physical-object)))
  (goal-scene
    (value (ingest->fuel
         (actor
           (value =actor)); Same actor as above
         (object
           (value =object)) ; Same object as above
         )))
  (scenes
    (value (=goal-scene))); The scene is the goal scene
  (main-result
    (value (burning?
         (domain (value =object))
         )))
  )
(define area (lambda (r) (* 3.14 (* r r))))
`
