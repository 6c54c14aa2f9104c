package testutil

// Solution is a judge problem file with the cursor-relevant layout:
// line 1 holds the problem header, the code block spans lines 7-13.
const Solution = `/*
 * @lc app=leetcode id=1 lang=cpp
 *
 * [1] Two Sum
 */

// @lc code=start
class Solution {
public:
    vector<int> twoSum(vector<int>& nums, int target) {
        return {};
    }
};
// @lc code=end
`

// AcceptedResult is a judge result as printed by the leetcode client.
const AcceptedResult = `  ✔ Accepted
  ✔ 57/57 cases passed (8 ms)
  ✔ Your runtime beats 91.35 % of cpp submissions
  ✔ Your memory usage beats 45.12 % of cpp submissions (10.6 MB)
`

// WrongAnswerResult is a rejected judge result.
const WrongAnswerResult = `  ✘ Wrong Answer
  ✘ 12/57 cases passed (N/A)
`
