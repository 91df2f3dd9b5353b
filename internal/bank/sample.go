package bank

// SampleJSON is the example document shown by "quizdeck sample" and used as
// the paste placeholder in docs. It covers all three question kinds.
const SampleJSON = `[
  {
    "type": "single",
    "text": "Which planet is closest to the sun?",
    "options": ["Venus", "Mercury", "Earth", "Mars"],
    "answer": 1,
    "explanation": "Mercury orbits at roughly 58 million km."
  },
  {
    "type": "multiple",
    "text": "Which of these are primary colors of light?",
    "options": ["Red", "Green", "Yellow", "Blue"],
    "answer": [0, 1, 3]
  },
  {
    "type": "text",
    "text": "Explain the difference between latency and throughput.",
    "answer": "Latency is the time for one operation; throughput is operations per unit time."
  }
]
`
